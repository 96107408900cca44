package kernel

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// Linear は線形カーネル
// k(x, y) = x・y
type Linear struct{}

// NewLinear は新しい線形カーネルを作成する
func NewLinear() *Linear {
	return &Linear{}
}

// String はカーネル名を返す
func (l *Linear) String() string { return "linear" }

// Gram は訓練データXに対するグラム行列 X X^T を計算する
func (l *Linear) Gram(X mat.Matrix) (*mat.Dense, error) {
	return l.GramBetween(X, X)
}

// GramBetween はカーネル評価行列 A B^T を計算する
func (l *Linear) GramBetween(A, B mat.Matrix) (*mat.Dense, error) {
	ra, ca := A.Dims()
	rb, cb := B.Dims()
	if ra == 0 || rb == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "kernel: Linear.GramBetween")
	}
	if ca != cb {
		return nil, errors.NewDimensionError("Linear.GramBetween", ca, cb, 1)
	}

	K := mat.NewDense(ra, rb, nil)
	K.Mul(A, B.T())
	return K, nil
}

// RFT は線形カーネルでは未対応
func (l *Linear) RFT(nFeatures int, rng *rand.Rand) (*RandomFourier, error) {
	return nil, errors.Wrap(errors.ErrNotImplemented, "kernel: Linear has no random feature transform")
}
