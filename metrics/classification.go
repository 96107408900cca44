package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// ClassificationAccuracy は分類精度をパーセント（0〜100）で計算する
//
// yTrue と yPred は同じ長さのクラスインデックスベクトル。
// インデックスの基数（0始まりか1始まりか）は両者で揃っていればよい。
func ClassificationAccuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("ClassificationAccuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("ClassificationAccuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return 100 * float64(correct) / float64(n), nil
}

// ConfusionMatrix は K×K の混同行列を計算する
//
// (i, j) 要素は真のクラスが i で予測クラスが j だったサンプル数。
// ラベルは 0 から K-1 の整数であることを前提とする。
func ConfusionMatrix(yTrue, yPred *mat.VecDense, nClasses int) (*mat.Dense, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty vector")
	}

	if yPred.Len() != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	if nClasses <= 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "nClasses must be positive")
	}

	cm := mat.NewDense(nClasses, nClasses, nil)
	for i := 0; i < n; i++ {
		t := int(yTrue.AtVec(i))
		p := int(yPred.AtVec(i))
		if t < 0 || t >= nClasses || p < 0 || p >= nClasses {
			return nil, errors.NewValueError("ConfusionMatrix", "label out of range [0, nClasses)")
		}
		cm.Set(t, p, cm.At(t, p)+1)
	}

	return cm, nil
}
