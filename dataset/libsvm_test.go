package dataset

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestReadLibSVM_Basic(t *testing.T) {
	data := `1 1:0.5 3:1.5
0 2:2.0
1 1:-1.0 2:0.25 3:3.0
`
	X, y, err := ReadLibSVM(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadLibSVM failed: %v", err)
	}

	r, c := X.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("expected 3x3 matrix, got %dx%d", r, c)
	}

	wantX := mat.NewDense(3, 3, []float64{
		0.5, 0, 1.5,
		0, 2.0, 0,
		-1.0, 0.25, 3.0,
	})
	if !mat.Equal(X, wantX) {
		t.Errorf("unexpected matrix:\n%v", mat.Formatted(X))
	}

	wantY := []float64{1, 0, 1}
	for i, w := range wantY {
		if y.AtVec(i) != w {
			t.Errorf("y[%d]=%f, want %f", i, y.AtVec(i), w)
		}
	}
}

func TestReadLibSVM_SkipsCommentsAndBlankLines(t *testing.T) {
	data := `# header comment
1 1:1.0

0 1:2.0
`
	X, y, err := ReadLibSVM(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadLibSVM failed: %v", err)
	}

	r, _ := X.Dims()
	if r != 2 || y.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", r)
	}
}

func TestReadLibSVM_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad label", "abc 1:1.0\n"},
		{"missing colon", "1 11.0\n"},
		{"bad index", "1 x:1.0\n"},
		{"zero index", "1 0:1.0\n"},
		{"bad value", "1 1:xyz\n"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ReadLibSVM(strings.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
