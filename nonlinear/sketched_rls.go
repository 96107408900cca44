package nonlinear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/core/model"
	"github.com/YuminosukeSato/gorls/kernel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
	"github.com/YuminosukeSato/gorls/pkg/log"
)

// SketchedRLS はランダム特徴（sketching）による近似カーネルRLSモデル
//
// カーネルのランダム特徴変換でXをd次元の特徴行列Zに写し、
// 主問題 (Z^T Z + λI) w = Z^T Y を解く。d << m のとき、
// KernelRLSのO(m^3)に対して解法コストはO(d^3 + m d^2)になる。
//
// 訓練時に抽出した変換はモデル状態の一部として保存され、予測時に
// 同一の変換が再利用される。変換を再抽出すると予測は静かに壊れる。
type SketchedRLS struct {
	model.BaseEstimator

	kernel kernel.Kernel
	opts   options

	// Weights は主問題の重み (d×K または d×1)
	Weights *mat.Dense

	// rft は訓練時に抽出されたランダム特徴変換。再抽出してはならない
	rft *kernel.RandomFourier

	// NClasses は多クラスの場合のクラス数 K
	NClasses int

	nFeatures int
}

// NewSketchedRLS は新しいSketchedRLSモデルを作成する
//
// 使用例:
//
//	model := nonlinear.NewSketchedRLS(
//	    kernel.NewGaussian(nFeatures, 10.0),
//	    nonlinear.WithRandomFeatures(100),
//	    nonlinear.WithRegularization(0.001),
//	)
func NewSketchedRLS(k kernel.Kernel, opts ...Option) *SketchedRLS {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SketchedRLS{kernel: k, opts: o}
}

// Fit はモデルを訓練データで学習させる
//
// ランダム特徴変換を一度だけ抽出してXに適用し、特徴空間で
// 正則化最小二乗系を解く。
func (m *SketchedRLS) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "SketchedRLS.Fit")

	r, c := X.Dims()
	ry, _ := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("SketchedRLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("SketchedRLS.Fit", r, ry, 0)
	}

	rft, err := m.kernel.RFT(m.opts.randomFeatures, newRNG(m.opts.seed))
	if err != nil {
		return err
	}

	Z, err := rft.Apply(X)
	if err != nil {
		return err
	}

	Y, nClasses, err := encodeTargets("SketchedRLS.Fit", y, m.opts.multiclass)
	if err != nil {
		return err
	}

	// (Z^T Z + λI) w = Z^T Y
	var ztz, zty mat.Dense
	ztz.Mul(Z.T(), Z)
	zty.Mul(Z.T(), Y)

	weights, err := solveSPD("SketchedRLS.Fit", ridgeSym(&ztz, m.opts.regularization), &zty)
	if err != nil {
		return err
	}

	m.Weights = weights
	m.rft = rft
	m.NClasses = nClasses
	m.nFeatures = c
	m.SetFitted()

	logger := log.GetLoggerWithName("nonlinear.sketchedrls")
	logger.Debug("Training completed",
		log.OperationKey, "fit",
		log.KernelKey, m.kernel.String(),
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.ClassesKey, nClasses,
		log.RandomFeaturesKey, m.opts.randomFeatures,
		log.RegularizationKey, m.opts.regularization)

	return nil
}

// Predict は入力データに対する予測を行う
//
// 訓練時に保存した変換をXtに適用する。同じ学習済みモデルに対する
// 同じ入力の2回のPredictはビット単位で同一の結果を返す。
func (m *SketchedRLS) Predict(Xt mat.Matrix) (pred mat.Matrix, err error) {
	defer errors.Recover(&err, "SketchedRLS.Predict")

	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("SketchedRLS", "Predict")
	}

	Zt, err := m.rft.Apply(Xt)
	if err != nil {
		return nil, err
	}

	var scores mat.Dense
	scores.Mul(Zt, m.Weights)

	if m.opts.multiclass {
		return argmaxDecode(&scores), nil
	}
	return &scores, nil
}
