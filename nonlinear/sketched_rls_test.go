package nonlinear

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/kernel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
)

func TestSketchedRLS_HeldOutAccuracy(t *testing.T) {
	X, y := makeBlobs(100, 5)

	Xtrn := X.Slice(0, 80, 0, 2).(*mat.Dense)
	Xtst := X.Slice(80, 100, 0, 2).(*mat.Dense)
	ytrn := y.Slice(0, 80, 0, 1).(*mat.Dense)
	ytst := y.Slice(80, 100, 0, 1).(*mat.Dense)

	m := NewSketchedRLS(kernel.NewGaussian(2, 2.0),
		WithRegularization(0.001),
		WithRandomFeatures(300),
		WithSeed(7))
	if err := m.Fit(Xtrn, ytrn); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := m.Predict(Xtst)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	r, c := pred.Dims()
	if r != 20 || c != 1 {
		t.Fatalf("expected 20x1 predictions, got %dx%d", r, c)
	}

	if acc := accuracyAgainst(t, pred, ytst); acc < 95 {
		t.Errorf("held-out accuracy %f%% below 95%%", acc)
	}
}

func TestSketchedRLS_PredictDeterministic(t *testing.T) {
	// 変換は学習時に一度だけ抽選されるため、同じ入力への予測はビット単位で一致する
	X, y := makeBlobs(60, 6)

	m := NewSketchedRLS(kernel.NewGaussian(2, 2.0),
		WithRandomFeatures(200),
		WithSeed(11))
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	p1, err := m.Predict(X)
	if err != nil {
		t.Fatalf("first Predict failed: %v", err)
	}
	p2, err := m.Predict(X)
	if err != nil {
		t.Fatalf("second Predict failed: %v", err)
	}

	if !mat.Equal(p1, p2) {
		t.Error("repeated predictions differ")
	}
}

func TestSketchedRLS_SeedReproducibility(t *testing.T) {
	X, y := makeBlobs(60, 8)

	fit := func() mat.Matrix {
		m := NewSketchedRLS(kernel.NewGaussian(2, 2.0),
			WithRandomFeatures(200),
			WithSeed(42))
		if err := m.Fit(X, y); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		pred, err := m.Predict(X)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		return pred
	}

	if !mat.Equal(fit(), fit()) {
		t.Error("same seed produced different predictions")
	}
}

func TestSketchedRLS_LinearKernelUnsupported(t *testing.T) {
	X, y := makeBlobs(20, 9)

	m := NewSketchedRLS(kernel.NewLinear(), WithSeed(1))
	err := m.Fit(X, y)
	if !errors.Is(err, errors.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestSketchedRLS_NotFitted(t *testing.T) {
	m := NewSketchedRLS(kernel.NewGaussian(2, 1.0))

	_, err := m.Predict(mat.NewDense(1, 2, nil))
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFittedError, got %v", err)
	}
}
