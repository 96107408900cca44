package nonlinear

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/kernel"
	"github.com/YuminosukeSato/gorls/pkg/errors"
)

func TestNystromRLS_InvalidProbDist(t *testing.T) {
	X, y := makeBlobs(20, 1)

	m := NewNystromRLS(kernel.NewGaussian(2, 2.0),
		WithRandomFeatures(10),
		WithProbDist("gaussian"))
	err := m.Fit(X, y)
	if err == nil {
		t.Fatal("expected error for unknown probability distribution")
	}

	var ve *errors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.ParamName != "probdist" {
		t.Errorf("expected param probdist, got %q", ve.ParamName)
	}
}

func TestNystromRLS_UniformHeldOutAccuracy(t *testing.T) {
	X, y := makeBlobs(100, 12)

	Xtrn := X.Slice(0, 80, 0, 2).(*mat.Dense)
	Xtst := X.Slice(80, 100, 0, 2).(*mat.Dense)
	ytrn := y.Slice(0, 80, 0, 1).(*mat.Dense)
	ytst := y.Slice(80, 100, 0, 1).(*mat.Dense)

	m := NewNystromRLS(kernel.NewGaussian(2, 2.0),
		WithRandomFeatures(40),
		WithRegularization(0.001),
		WithSeed(3))
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

func TestNystromRLS_LeverageSampling(t *testing.T) {
	X, y := makeBlobs(60, 13)

	m := NewNystromRLS(kernel.NewGaussian(2, 2.0),
		WithRandomFeatures(30),
		WithRegularization(0.001),
		WithProbDist(ProbDistLeverages),
		WithSeed(5))
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := m.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if acc := accuracyAgainst(t, pred, y); acc < 90 {
		t.Errorf("training accuracy %f%% below sanity threshold", acc)
	}
}

func TestNystromRLS_PredictShape(t *testing.T) {
	X, y := makeBlobs(50, 14)

	m := NewNystromRLS(kernel.NewGaussian(2, 2.0),
		WithRandomFeatures(25),
		WithSeed(2))
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	for _, rows := range []int{1, 7, 50} {
		Xt := X.Slice(0, rows, 0, 2).(*mat.Dense)
		pred, err := m.Predict(Xt)
		if err != nil {
			t.Fatalf("Predict failed for %d rows: %v", rows, err)
		}
		r, c := pred.Dims()
		if r != rows || c != 1 {
			t.Errorf("expected %dx1 predictions, got %dx%d", rows, r, c)
		}
	}
}

func TestNystromRLS_NotFitted(t *testing.T) {
	m := NewNystromRLS(kernel.NewGaussian(2, 1.0))

	_, err := m.Predict(mat.NewDense(1, 2, nil))
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFittedError, got %v", err)
	}
}
