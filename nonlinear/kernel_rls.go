// Package nonlinear はカーネルベースの正則化最小二乗法（RLS）ソルバーを提供します。
//
// 3つのソルバーが同じ学習→予測の形を共有します:
//
//   - KernelRLS: 厳密法。m×mのグラム行列を組み立て、双対係数を解く。
//   - SketchedRLS: ランダム特徴による近似法。特徴空間で主問題を解く。
//   - NystromRLS: 行サンプリングによる低ランク近似法。
//
// mが大きい場合、KernelRLSの解法コストはO(m^3)になるため、
// SketchedRLSまたはNystromRLSの使用を推奨します。
package nonlinear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/core/model"
	"github.com/YuminosukeSato/gorls/kernel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
	"github.com/YuminosukeSato/gorls/pkg/log"
)

// KernelRLS は厳密なカーネル正則化最小二乗法モデル
//
// 訓練時にm×mのグラム行列 K を構築し、双対係数 α を
// (K + λI) α = Y の対称正定値解法で求める。
type KernelRLS struct {
	model.BaseEstimator

	kernel kernel.Kernel
	opts   options

	// Alpha は双対係数 (m×K または m×1)
	Alpha *mat.Dense

	// X は訓練データのコピー。予測時のクロスグラム行列計算に必要
	X *mat.Dense

	// NClasses は多クラスの場合のクラス数 K
	NClasses int

	nFeatures int
}

// NewKernelRLS は新しいKernelRLSモデルを作成する
//
// 使用例:
//
//	model := nonlinear.NewKernelRLS(
//	    kernel.NewGaussian(nFeatures, 10.0),
//	    nonlinear.WithRegularization(0.001),
//	)
func NewKernelRLS(k kernel.Kernel, opts ...Option) *KernelRLS {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &KernelRLS{kernel: k, opts: o}
}

// Fit はモデルを訓練データで学習させる
//
// X は m×n の入力行列、y は m×1 のラベルベクトル
// （多クラスの場合、ラベルは 0 から K-1。符号化済みの m×K 行列も受け付ける）。
// 特異または条件の悪い系に対する復旧処理は行わず、ソルバーの失敗を
// そのままエラーとして返す。
func (m *KernelRLS) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "KernelRLS.Fit")

	r, c := X.Dims()
	ry, _ := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("KernelRLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("KernelRLS.Fit", r, ry, 0)
	}

	K, err := m.kernel.Gram(X)
	if err != nil {
		return err
	}

	Y, nClasses, err := encodeTargets("KernelRLS.Fit", y, m.opts.multiclass)
	if err != nil {
		return err
	}

	alpha, err := solveSPD("KernelRLS.Fit", ridgeSym(K, m.opts.regularization), Y)
	if err != nil {
		return err
	}

	m.Alpha = alpha
	m.X = mat.DenseCopyOf(X)
	m.NClasses = nClasses
	m.nFeatures = c
	m.SetFitted()

	logger := log.GetLoggerWithName("nonlinear.kernelrls")
	logger.Debug("Training completed",
		log.OperationKey, "fit",
		log.KernelKey, m.kernel.String(),
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.ClassesKey, nClasses,
		log.RegularizationKey, m.opts.regularization)

	return nil
}

// Predict は入力データに対する予測を行う
//
// 多クラスの場合は1始まりのクラスインデックス（m_t×1）を、
// そうでない場合は生のスコア（m_t×1 または m_t×K）を返す。
func (m *KernelRLS) Predict(Xt mat.Matrix) (pred mat.Matrix, err error) {
	defer errors.Recover(&err, "KernelRLS.Predict")

	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("KernelRLS", "Predict")
	}

	Kt, err := m.kernel.GramBetween(Xt, m.X)
	if err != nil {
		return nil, err
	}

	var scores mat.Dense
	scores.Mul(Kt, m.Alpha)

	if m.opts.multiclass {
		return argmaxDecode(&scores), nil
	}
	return &scores, nil
}
