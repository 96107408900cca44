package nonlinear

// ProbDist はNystromRLSの行サンプリング分布の選択肢
type ProbDist string

const (
	// ProbDistUniform は一様分布（各行 1/m）でサンプリングする
	ProbDistUniform ProbDist = "uniform"

	// ProbDistLeverages は近似レバレッジスコアに比例してサンプリングする
	ProbDistLeverages ProbDist = "leverages"
)

// options は各ソルバー共通のハイパーパラメータ
type options struct {
	regularization float64
	multiclass     bool
	randomFeatures int
	probDist       ProbDist
	seed           int64
}

// defaultOptions はソルバー共通の既定値を返す
func defaultOptions() options {
	return options{
		regularization: 1.0,
		multiclass:     true,
		randomFeatures: 100,
		probDist:       ProbDistUniform,
		seed:           0,
	}
}

// Option is a function that configures an RLS solver
type Option func(*options)

// WithRegularization sets the ridge regularization value lambda.
// The solved system is (A + lambda*I) z = B, so lambda must be positive
// for the system to stay positive definite.
func WithRegularization(lambda float64) Option {
	return func(o *options) {
		o.regularization = lambda
	}
}

// WithMulticlass sets whether the labels encode a multiclass problem.
// When true, y is one-vs-rest encoded during Fit and Predict returns
// 1-based class indices; when false, Predict returns raw scores.
func WithMulticlass(multiclass bool) Option {
	return func(o *options) {
		o.multiclass = multiclass
	}
}

// WithRandomFeatures sets the random-feature (or Nystrom sample)
// dimensionality used by the approximate solvers.
func WithRandomFeatures(n int) Option {
	return func(o *options) {
		o.randomFeatures = n
	}
}

// WithProbDist sets the Nystrom row-sampling distribution.
func WithProbDist(dist ProbDist) Option {
	return func(o *options) {
		o.probDist = dist
	}
}

// WithSeed sets the random seed for the feature transform draw and the
// row sampler. Zero selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
