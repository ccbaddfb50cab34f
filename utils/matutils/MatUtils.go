// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"github.com/samuelfneumann/gridq/utils/floatutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FormatPrec formats a matrix for printing with prec digits after the
// decimal point
func FormatPrec(X mat.Matrix, prec int) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%.*f", prec, fa)
}

// Range returns the minimum and maximum elements of a matrix
func Range(X *mat.Dense) (min, max float64) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0
	}
	min, max = X.At(0, 0), X.At(0, 0)
	for i := 0; i < r; i++ {
		row := X.RawRowView(i)
		min = floatutils.Min(min, floats.Min(row))
		max = floatutils.Max(max, floats.Max(row))
	}
	return min, max
}
