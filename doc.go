// Package gorls provides kernel-based regularized least squares (RLS)
// learning for Go, including exact, random-feature and Nystrom-approximated
// solvers over dense gonum matrices.
//
// GoRLS offers a scikit-learn-like estimator API: construct a model with a
// kernel, Fit it on a labeled matrix, then Predict on new rows.
//
// # Quick Start
//
// Train an exact kernel RLS classifier with a Gaussian kernel:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gorls/kernel"
//	    "github.com/YuminosukeSato/gorls/nonlinear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    model := nonlinear.NewKernelRLS(
//	        kernel.NewGaussian(2, 1.0),
//	        nonlinear.WithRegularization(0.001),
//	    )
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred))
//	}
//
// # Packages
//
//   - nonlinear: KernelRLS, SketchedRLS and NystromRLS solvers
//   - kernel: the Kernel interface, Gaussian and Linear kernels, and the
//     random Fourier feature transform
//   - sketch: uniform and non-uniform row samplers
//   - preprocessing: one-vs-rest label encoding
//   - metrics: classification and regression metrics
//   - dataset: LIBSVM format loading
//
// When the number of training rows m is small, use nonlinear.KernelRLS.
// For larger m, prefer SketchedRLS or NystromRLS, which replace the O(m^3)
// dual solve by a solve in a fixed feature dimension d << m.
package gorls
