package geometry

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateFit is returned when the sample points cannot support a cubic
// fit: fewer than four points, mismatched slices, all-identical x values, or a
// singular normal system.
var ErrDegenerateFit = errors.New("degenerate cubic fit")

// Cubic holds the coefficients of y = A*x^3 + B*x^2 + C*x + D.
type Cubic struct {
	A float64
	B float64
	C float64
	D float64
}

// At evaluates the polynomial at x.
func (c Cubic) At(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// SlopeAtZero is the first derivative of the curve evaluated at x = 0.
func (c Cubic) SlopeAtZero() float64 {
	return c.C
}

// FitCubic least-squares fits a cubic through the given points.
func FitCubic(xs, ys []float64) (Cubic, error) {
	if len(xs) != len(ys) || len(xs) < 4 {
		return Cubic{}, ErrDegenerateFit
	}
	distinct := false
	for _, x := range xs[1:] {
		if x != xs[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return Cubic{}, ErrDegenerateFit
	}

	a := mat.NewDense(len(xs), 4, nil)
	b := mat.NewVecDense(len(ys), nil)
	for i, x := range xs {
		a.Set(i, 0, x*x*x)
		a.Set(i, 1, x*x)
		a.Set(i, 2, x)
		a.Set(i, 3, 1)
		b.SetVec(i, ys[i])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return Cubic{}, errors.Wrap(ErrDegenerateFit, err.Error())
	}

	fit := Cubic{
		A: coef.AtVec(0),
		B: coef.AtVec(1),
		C: coef.AtVec(2),
		D: coef.AtVec(3),
	}
	if math.IsNaN(fit.A) || math.IsNaN(fit.B) || math.IsNaN(fit.C) || math.IsNaN(fit.D) {
		return Cubic{}, ErrDegenerateFit
	}
	return fit, nil
}
