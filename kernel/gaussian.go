package kernel

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/core/parallel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 64

// Gaussian はガウシアン（RBF）カーネル
// k(x, y) = exp(-||x - y||^2 / (2σ^2))
type Gaussian struct {
	// NFeatures は入力の特徴量の数
	NFeatures int

	// Bandwidth はバンド幅 σ
	Bandwidth float64
}

// NewGaussian は新しいガウシアンカーネルを作成する
//
// パラメータ:
//   - nFeatures: 入力の特徴量の数
//   - bandwidth: バンド幅 σ
func NewGaussian(nFeatures int, bandwidth float64) *Gaussian {
	return &Gaussian{NFeatures: nFeatures, Bandwidth: bandwidth}
}

// String はカーネル名を返す
func (g *Gaussian) String() string { return "gaussian" }

// Gram は訓練データXに対するグラム行列を計算する
func (g *Gaussian) Gram(X mat.Matrix) (*mat.Dense, error) {
	return g.GramBetween(X, X)
}

// GramBetween はAの各行とBの各行の間のカーネル評価行列を計算する
//
// 戻り値は |A|×|B| 行列で、(i, j) 要素は k(A_i, B_j)
func (g *Gaussian) GramBetween(A, B mat.Matrix) (*mat.Dense, error) {
	ra, ca := A.Dims()
	rb, cb := B.Dims()
	if ra == 0 || rb == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "kernel: Gaussian.GramBetween")
	}
	if ca != cb {
		return nil, errors.NewDimensionError("Gaussian.GramBetween", ca, cb, 1)
	}

	K := mat.NewDense(ra, rb, nil)
	inv2s2 := 1.0 / (2 * g.Bandwidth * g.Bandwidth)

	// 行ごとに独立なので行単位で並列化する
	parallel.ParallelizeWithThreshold(ra, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < rb; j++ {
				var d2 float64
				for k := 0; k < ca; k++ {
					diff := A.At(i, k) - B.At(j, k)
					d2 += diff * diff
				}
				K.Set(i, j, math.Exp(-d2*inv2s2))
			}
		}
	})

	return K, nil
}

// RFT はランダムフーリエ特徴変換を抽出する
//
// ガウシアンカーネルのスペクトル測度は N(0, σ^-2 I) なので、
// 周波数行列 Ω の各要素を N(0, 1/σ^2) から抽出する。
func (g *Gaussian) RFT(nFeatures int, rng *rand.Rand) (*RandomFourier, error) {
	if nFeatures <= 0 {
		return nil, errors.NewValueError("Gaussian.RFT", "nFeatures must be positive")
	}

	omega := mat.NewDense(nFeatures, g.NFeatures, nil)
	offsets := make([]float64, nFeatures)
	for i := 0; i < nFeatures; i++ {
		for j := 0; j < g.NFeatures; j++ {
			omega.Set(i, j, rng.NormFloat64()/g.Bandwidth)
		}
		offsets[i] = rng.Float64() * 2 * math.Pi
	}

	return &RandomFourier{
		Omega:     omega,
		Offsets:   offsets,
		NFeatures: nFeatures,
	}, nil
}
