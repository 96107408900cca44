package nonlinear

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
	"github.com/YuminosukeSato/gorls/preprocessing"
)

// newRNG はシードから乱数生成器を作成する。シードが0の場合は時刻を使う。
func newRNG(seed int64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ridgeSym は対称行列 A + lambda*I を組み立てる
//
// Aは対称であることを前提とし、上三角のみを読む。
func ridgeSym(A mat.Matrix, lambda float64) *mat.SymDense {
	n, _ := A.Dims()
	S := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			S.SetSym(i, j, A.At(i, j))
		}
		S.SetSym(i, i, S.At(i, i)+lambda)
	}
	return S
}

// solveSPD は対称正定値系 A z = B をコレスキー分解で解く
//
// 系が正定値でない場合はModelErrorを返す。呼び出し元での
// リトライやフォールバックは行わない。
func solveSPD(op string, A *mat.SymDense, B mat.Matrix) (*mat.Dense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(A); !ok {
		return nil, errors.NewModelError(op, "matrix not positive definite", errors.ErrSingularMatrix)
	}

	var Z mat.Dense
	if err := chol.SolveTo(&Z, B); err != nil {
		return nil, errors.NewModelError(op, "SPD solve failed", err)
	}
	return &Z, nil
}

// encodeTargets はラベルを学習用ターゲット行列に変換する
//
// multiclassの場合は {-1, +1} のone-vs-rest符号化（m×K）を返す。
// yが既に複数列の場合は符号化済みとみなしてそのまま使う。
// 非multiclassの場合はyを密行列にコピーして返す。
func encodeTargets(op string, y mat.Matrix, multiclass bool) (*mat.Dense, int, error) {
	ry, cy := y.Dims()
	if ry == 0 {
		return nil, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	if multiclass && cy == 1 {
		lb := preprocessing.NewLabelBinarizer()
		Y, err := lb.FitTransformSigned(y)
		if err != nil {
			return nil, 0, err
		}
		return Y, lb.NClasses, nil
	}

	Y := mat.DenseCopyOf(y)
	return Y, cy, nil
}

// argmaxDecode はスコア行列を1始まりのクラスインデックス列に変換する
//
// 各行について最大スコアの列インデックス（同点は先頭優先）に1を
// 足したものを返す。入力側のラベルは0始まり、出力は1始まりという
// 慣習は観測可能な挙動として維持する。
func argmaxDecode(scores *mat.Dense) *mat.Dense {
	m, _ := scores.Dims()
	pred := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		row := scores.RawRowView(i)
		pred.Set(i, 0, float64(floats.MaxIdx(row)+1))
	}
	return pred
}
