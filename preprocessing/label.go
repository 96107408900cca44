// Package preprocessing はラベル符号化などのデータ前処理を提供します。
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/core/model"
	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// LabelBinarizer は多クラスラベルをone-vs-rest指示行列に符号化する
//
// ラベルは 0 から K-1 の整数であることを前提とする。
// Transform は {0, 1} のダミー符号化を、TransformSigned は {-1, +1} の
// 符号付き符号化を返す。
type LabelBinarizer struct {
	model.BaseEstimator

	// NClasses は観測されたクラス数 K
	NClasses int
}

// NewLabelBinarizer は新しいLabelBinarizerを作成する
func NewLabelBinarizer() *LabelBinarizer {
	return &LabelBinarizer{}
}

// Fit はラベルベクトルからクラス数を学習する
//
// y は m×1 行列で、各要素は 0 から K-1 の整数ラベル
func (lb *LabelBinarizer) Fit(y mat.Matrix) error {
	m, c := y.Dims()
	if m == 0 {
		return errors.NewModelError("LabelBinarizer.Fit", "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return errors.NewValueError("LabelBinarizer.Fit", "y must be a column vector")
	}

	maxLabel := 0.0
	for i := 0; i < m; i++ {
		v := y.At(i, 0)
		if v < 0 || v != math.Trunc(v) {
			return errors.NewValueError("LabelBinarizer.Fit", "labels must be non-negative integers in [0, K)")
		}
		if v > maxLabel {
			maxLabel = v
		}
	}

	lb.NClasses = int(maxLabel) + 1
	lb.SetFitted()
	return nil
}

// Transform はラベルベクトルを m×K の {0, 1} ダミー符号化行列に変換する
func (lb *LabelBinarizer) Transform(y mat.Matrix) (*mat.Dense, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}

	m, c := y.Dims()
	if c != 1 {
		return nil, errors.NewValueError("LabelBinarizer.Transform", "y must be a column vector")
	}

	Y := mat.NewDense(m, lb.NClasses, nil)
	for i := 0; i < m; i++ {
		k := int(y.At(i, 0))
		if k < 0 || k >= lb.NClasses {
			return nil, errors.NewValueError("LabelBinarizer.Transform", "label out of fitted range")
		}
		Y.Set(i, k, 1)
	}
	return Y, nil
}

// TransformSigned はラベルベクトルを m×K の {-1, +1} 符号化行列に変換する
//
// ダミー符号化 Y に対して 2Y - 1 を適用したものと等しい。
func (lb *LabelBinarizer) TransformSigned(y mat.Matrix) (*mat.Dense, error) {
	Y, err := lb.Transform(y)
	if err != nil {
		return nil, err
	}

	r, c := Y.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			Y.Set(i, j, 2*Y.At(i, j)-1)
		}
	}
	return Y, nil
}

// FitTransformSigned はFitとTransformSignedを同時に実行する
func (lb *LabelBinarizer) FitTransformSigned(y mat.Matrix) (*mat.Dense, error) {
	if err := lb.Fit(y); err != nil {
		return nil, err
	}
	return lb.TransformSigned(y)
}

// DummyCoding はラベルベクトルを m×K の {0, 1} 指示行列に変換する
//
// 状態を持たない一括変換のための便宜関数。
func DummyCoding(y mat.Matrix) (*mat.Dense, error) {
	lb := NewLabelBinarizer()
	if err := lb.Fit(y); err != nil {
		return nil, err
	}
	return lb.Transform(y)
}
