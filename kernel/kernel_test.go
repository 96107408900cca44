package kernel

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
)

func TestGaussianGram_Basic(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 2,
	})

	k := NewGaussian(2, 1.0)
	K, err := k.Gram(X)
	if err != nil {
		t.Fatalf("Gram failed: %v", err)
	}

	r, c := K.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("expected 3x3 gram matrix, got %dx%d", r, c)
	}

	// 対角は常に1
	for i := 0; i < 3; i++ {
		if math.Abs(K.At(i, i)-1.0) > 1e-12 {
			t.Errorf("expected K[%d][%d]=1, got %f", i, i, K.At(i, i))
		}
	}

	// k(x0, x1) = exp(-1/2)
	want := math.Exp(-0.5)
	if math.Abs(K.At(0, 1)-want) > 1e-12 {
		t.Errorf("expected K[0][1]=%f, got %f", want, K.At(0, 1))
	}

	// 対称性
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if K.At(i, j) != K.At(j, i) {
				t.Errorf("gram matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestGaussianGramBetween_Shape(t *testing.T) {
	A := mat.NewDense(4, 3, nil)
	B := mat.NewDense(2, 3, nil)

	k := NewGaussian(3, 2.0)
	K, err := k.GramBetween(A, B)
	if err != nil {
		t.Fatalf("GramBetween failed: %v", err)
	}

	r, c := K.Dims()
	if r != 4 || c != 2 {
		t.Errorf("expected 4x2, got %dx%d", r, c)
	}
}

func TestGaussianGramBetween_DimensionMismatch(t *testing.T) {
	A := mat.NewDense(2, 3, nil)
	B := mat.NewDense(2, 4, nil)

	k := NewGaussian(3, 1.0)
	if _, err := k.GramBetween(A, B); err == nil {
		t.Error("expected dimension error for mismatched feature counts")
	}
}

func TestGaussianGram_LargeParallelPath(t *testing.T) {
	// parallelThresholdを超える行数で逐次計算と同じ値になることを確認する
	rng := rand.New(rand.NewSource(7))
	m := parallelThreshold * 2
	X := mat.NewDense(m, 2, nil)
	for i := 0; i < m; i++ {
		X.Set(i, 0, rng.NormFloat64())
		X.Set(i, 1, rng.NormFloat64())
	}

	k := NewGaussian(2, 1.5)
	K, err := k.Gram(X)
	if err != nil {
		t.Fatalf("Gram failed: %v", err)
	}

	inv2s2 := 1.0 / (2 * 1.5 * 1.5)
	for _, ij := range [][2]int{{0, 1}, {m - 1, 0}, {m / 2, m - 1}} {
		i, j := ij[0], ij[1]
		dx := X.At(i, 0) - X.At(j, 0)
		dy := X.At(i, 1) - X.At(j, 1)
		want := math.Exp(-(dx*dx + dy*dy) * inv2s2)
		if math.Abs(K.At(i, j)-want) > 1e-12 {
			t.Errorf("K[%d][%d]=%f, want %f", i, j, K.At(i, j), want)
		}
	}
}

func TestLinearGram(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})

	k := NewLinear()
	K, err := k.Gram(X)
	if err != nil {
		t.Fatalf("Gram failed: %v", err)
	}

	want := [][]float64{
		{5, 11},
		{11, 25},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(K.At(i, j)-want[i][j]) > 1e-12 {
				t.Errorf("K[%d][%d]=%f, want %f", i, j, K.At(i, j), want[i][j])
			}
		}
	}
}

func TestLinearRFT_NotImplemented(t *testing.T) {
	k := NewLinear()
	if _, err := k.RFT(10, rand.New(rand.NewSource(1))); !errors.Is(err, errors.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestRandomFourier_Deterministic(t *testing.T) {
	k := NewGaussian(3, 1.0)

	rft1, err := k.RFT(50, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RFT failed: %v", err)
	}
	rft2, err := k.RFT(50, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RFT failed: %v", err)
	}

	X := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	})

	Z1, err := rft1.Apply(X)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	Z2, err := rft2.Apply(X)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !mat.Equal(Z1, Z2) {
		t.Error("transforms drawn with the same seed must produce identical features")
	}
}

func TestRandomFourier_ApproximatesKernel(t *testing.T) {
	// z(x)・z(y) は k(x, y) の不偏推定量。d が大きければ誤差は小さい
	k := NewGaussian(2, 1.0)
	rft, err := k.RFT(4000, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("RFT failed: %v", err)
	}

	X := mat.NewDense(2, 2, []float64{
		0, 0,
		0.5, 0.5,
	})
	Z, err := rft.Apply(X)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	var approx float64
	for j := 0; j < rft.NFeatures; j++ {
		approx += Z.At(0, j) * Z.At(1, j)
	}

	exact := math.Exp(-0.25) // exp(-0.5/(2*1))
	if math.Abs(approx-exact) > 0.1 {
		t.Errorf("random feature approximation too far off: got %f, want ~%f", approx, exact)
	}
}

func TestRandomFourier_Shape(t *testing.T) {
	k := NewGaussian(5, 2.0)
	rft, err := k.RFT(16, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("RFT failed: %v", err)
	}

	X := mat.NewDense(7, 5, nil)
	Z, err := rft.Apply(X)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	r, c := Z.Dims()
	if r != 7 || c != 16 {
		t.Errorf("expected 7x16 feature matrix, got %dx%d", r, c)
	}
}

func TestRandomFourier_DimensionMismatch(t *testing.T) {
	k := NewGaussian(3, 1.0)
	rft, err := k.RFT(8, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("RFT failed: %v", err)
	}

	X := mat.NewDense(2, 4, nil)
	if _, err := rft.Apply(X); err == nil {
		t.Error("expected dimension error for wrong feature count")
	}
}
