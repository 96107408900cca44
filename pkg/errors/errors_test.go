package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("KernelRLS", "Predict")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %T", err)
	}
	if nfe.ModelName != "KernelRLS" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{"row axis", 0, "rows"},
		{"feature axis", 1, "features"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("KernelRLS.Fit", 10, 5, tt.axis)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in message, got %v", tt.want, err)
			}
			var de *DimensionError
			if !As(err, &de) {
				t.Fatalf("expected DimensionError, got %T", err)
			}
			if de.Expected != 10 || de.Got != 5 {
				t.Errorf("unexpected fields: %+v", de)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("probdist", "unknown probability distribution strategy", "gaussian")

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.ParamName != "probdist" {
		t.Errorf("unexpected param name: %q", ve.ParamName)
	}
	if !strings.Contains(err.Error(), "gaussian") {
		t.Errorf("expected value in message, got %v", err)
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("KernelRLS.Fit", "singular matrix", ErrSingularMatrix)
	if !Is(err, ErrSingularMatrix) {
		t.Errorf("expected error to unwrap to ErrSingularMatrix")
	}
}

func TestWarnHandler(t *testing.T) {
	var got error
	SetWarningHandler(func(w error) { got = w })
	defer SetWarningHandler(nil)

	w := NewIllConditionedWarning("NystromRLS.Fit", "min_eigenvalue", 1e-16)
	Warn(w)

	if got == nil {
		t.Fatal("warning handler was not called")
	}
	if !strings.Contains(got.Error(), "ill-conditioned") {
		t.Errorf("unexpected warning: %v", got)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("solve", []float64{1, 2, 3}); err != nil {
		t.Errorf("expected nil for finite values, got %v", err)
	}

	nan := []float64{1, 0, 3}
	nan[1] = nan[1] / nan[1] // NaN
	if err := CheckNumericalStability("solve", nan); err == nil {
		t.Error("expected error for NaN values")
	}
}
