package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/core/parallel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// RandomFourier はランダムフーリエ特徴変換
//
// z(x) = sqrt(2/d) * cos(Ω x + b) によってカーネルの暗黙的な特徴空間を
// d次元で近似する (Rahimi & Recht, "Random features for large-scale
// kernel machines", NIPS 2007)。
//
// 一度抽出された Ω と b は固定であり、同じ変換を訓練時と予測時に
// 適用しなければ予測は意味を持たない。
type RandomFourier struct {
	// Omega は周波数行列 (d×n)。カーネルのスペクトル測度から抽出される。
	Omega *mat.Dense

	// Offsets は位相オフセット b (d要素、[0, 2π) の一様分布から抽出)
	Offsets []float64

	// NFeatures はランダム特徴の数 d
	NFeatures int
}

// Apply は変換をX (m×n) に適用し、特徴行列Z (m×d) を返す
func (r *RandomFourier) Apply(X mat.Matrix) (Z *mat.Dense, err error) {
	defer errors.Recover(&err, "RandomFourier.Apply")

	m, n := X.Dims()
	if m == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "kernel: RandomFourier.Apply")
	}
	_, nk := r.Omega.Dims()
	if n != nk {
		return nil, errors.NewDimensionError("RandomFourier.Apply", nk, n, 1)
	}

	// Z0 = X Ω^T
	Z = mat.NewDense(m, r.NFeatures, nil)
	Z.Mul(X, r.Omega.T())

	scale := math.Sqrt(2.0 / float64(r.NFeatures))
	parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < r.NFeatures; j++ {
				Z.Set(i, j, scale*math.Cos(Z.At(i, j)+r.Offsets[j]))
			}
		}
	})

	return Z, nil
}
