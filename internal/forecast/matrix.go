package forecast

import "math"

// pivotEpsilon: a pivot smaller than this makes the matrix singular for
// our purposes.
const pivotEpsilon = 1e-10

// invertMatrix inverts a square matrix using Gauss-Jordan elimination with
// partial pivoting. It returns a SINGULAR_MATRIX error when any pivot's
// absolute value falls below pivotEpsilon.
func invertMatrix(m [][]float64) ([][]float64, error) {
	n := len(m)

	// Build the augmented matrix [m | I].
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], m[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: swap in the row with the largest absolute
		// entry in this column.
		pivotRow := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug[row][col]) > math.Abs(aug[pivotRow][col]) {
				pivotRow = row
			}
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		if math.Abs(pivot) < pivotEpsilon {
			return nil, NewError(ErrSingularMatrix, "singular matrix: pivot %g at column %d", pivot, col)
		}

		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = make([]float64, n)
		copy(inv[i], aug[i][n:])
	}
	return inv, nil
}

// transpose returns the transpose of a rectangular matrix.
func transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	out := make([][]float64, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// multiply returns a*b for compatible matrices.
func multiply(a, b [][]float64) [][]float64 {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// multiplyVector returns m*v for a matrix and a column vector.
func multiplyVector(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i := range m {
		for j := range v {
			out[i] += m[i][j] * v[j]
		}
	}
	return out
}
