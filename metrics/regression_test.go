package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(3, []float64{1, 2, 5})

	got, err := MSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSE failed: %v", err)
	}

	want := 4.0 / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestMSE_DimensionMismatch(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(2, []float64{1, 2})

	if _, err := MSE(yTrue, yPred); err == nil {
		t.Error("expected dimension error")
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}

	want := math.Sqrt(12.5)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestR2Score(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	// 完全な予測はR²=1
	perfect, err := R2Score(yTrue, yTrue)
	if err != nil {
		t.Fatalf("R2Score failed: %v", err)
	}
	if math.Abs(perfect-1.0) > 1e-12 {
		t.Errorf("perfect prediction: got %f, want 1.0", perfect)
	}

	// 平均を返す予測はR²=0
	mean := mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5})
	zero, err := R2Score(yTrue, mean)
	if err != nil {
		t.Fatalf("R2Score failed: %v", err)
	}
	if math.Abs(zero) > 1e-12 {
		t.Errorf("mean prediction: got %f, want 0", zero)
	}
}

func TestR2Score_ConstantTruth(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{2, 2, 2})
	yPred := mat.NewVecDense(3, []float64{1, 2, 3})

	if _, err := R2Score(yTrue, yPred); err == nil {
		t.Error("expected error when total sum of squares is zero")
	}
}
