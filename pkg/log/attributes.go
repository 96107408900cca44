// Package log defines standard attribute keys for kernel learning operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in GoRLS. Using these standard keys enables better
// log analysis, monitoring, and debugging of training and prediction workflows.
//
// The keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "KernelRLS", "SketchedRLS", "NystromRLS"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "nonlinear", "kernel", "preprocessing", "metrics"
	ComponentKey = "ml.component"

	// KernelKey identifies the kernel family in use.
	// Examples: "gaussian", "linear"
	KernelKey = "ml.kernel"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	// Important for dimensionality tracking and debugging shape mismatches.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of classes for a multiclass problem.
	ClassesKey = "data.classes"

	// RandomFeaturesKey indicates the random-feature (or Nystrom sample)
	// dimensionality used by the approximate solvers.
	RandomFeaturesKey = "data.random_features"
)

// Hyperparameters
const (
	// RegularizationKey records the ridge regularization value lambda.
	RegularizationKey = "hyper.regularization"

	// BandwidthKey records the Gaussian kernel bandwidth sigma.
	BandwidthKey = "hyper.bandwidth"

	// ProbDistKey records the Nystrom row-sampling distribution.
	// Values: "uniform", "leverages"
	ProbDistKey = "hyper.probdist"
)

// Performance Metrics
// These attributes capture timing and accuracy information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy for evaluation operations.
	AccuracyKey = "metrics.accuracy"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)
