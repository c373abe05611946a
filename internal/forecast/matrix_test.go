package forecast

import (
	"math"
	"testing"
)

// identityWithin checks a*b ≈ I.
func identityWithin(t *testing.T, a, b [][]float64, tol float64) {
	t.Helper()
	prod := multiply(a, b)
	for i := range prod {
		for j := range prod[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod[i][j]-want) > tol {
				t.Fatalf("product[%d][%d] = %v, want %v", i, j, prod[i][j], want)
			}
		}
	}
}

func TestInvertMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}},
		{"2x2", [][]float64{{4, 7}, {2, 6}}},
		{"3x3", [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}},
		{"needs pivoting", [][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := invertMatrix(tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			identityWithin(t, tt.m, inv, 1e-9)
			identityWithin(t, inv, tt.m, 1e-9)
		})
	}
}

func TestInvertMatrixSingular(t *testing.T) {
	// Second row is a multiple of the first.
	m := [][]float64{{1, 2}, {2, 4}}
	_, err := invertMatrix(m)
	if err == nil {
		t.Fatal("expected singular matrix error")
	}
	if !IsCode(err, ErrSingularMatrix) {
		t.Errorf("expected SINGULAR_MATRIX code, got %v", err)
	}
}

func TestTransposeAndMultiply(t *testing.T) {
	m := [][]float64{{1, 2, 3}, {4, 5, 6}}
	tr := transpose(m)
	if len(tr) != 3 || len(tr[0]) != 2 {
		t.Fatalf("transpose shape = %dx%d, want 3x2", len(tr), len(tr[0]))
	}
	if tr[2][1] != 6 || tr[0][1] != 4 {
		t.Errorf("transpose content wrong: %v", tr)
	}

	// (2x3)·(3x2) = 2x2
	prod := multiply(m, tr)
	if prod[0][0] != 14 || prod[0][1] != 32 || prod[1][0] != 32 || prod[1][1] != 77 {
		t.Errorf("multiply = %v", prod)
	}

	v := multiplyVector(m, []float64{1, 1, 1})
	if v[0] != 6 || v[1] != 15 {
		t.Errorf("multiplyVector = %v", v)
	}
}
