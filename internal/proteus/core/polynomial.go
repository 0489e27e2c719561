package core

import (
	"fmt"
)

// Polynomial is a dense univariate polynomial over a Field, coefficients
// ordered low-degree first. Trailing (high-degree) zeros are trimmed so
// degree is canonical; the zero polynomial is represented as []{0}.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// NewPolynomial builds a polynomial from coefficients, trimming trailing
// zero coefficients.
func NewPolynomial(coefficients []*FieldElement) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("polynomial must have at least one coefficient")
	}
	field := coefficients[0].Field()
	for i, c := range coefficients {
		if !c.Field().Equals(field) {
			return nil, fmt.Errorf("coefficient %d is from a different field", i)
		}
	}

	last := len(coefficients) - 1
	for last > 0 && coefficients[last].IsZero() {
		last--
	}
	trimmed := make([]*FieldElement, last+1)
	copy(trimmed, coefficients[:last+1])

	return &Polynomial{coefficients: trimmed, field: field}, nil
}

// NewPolynomialFromInt64 builds a polynomial from int64 coefficients in the
// given field.
func NewPolynomialFromInt64(field *Field, coefficients []int64) (*Polynomial, error) {
	fieldCoeffs := make([]*FieldElement, len(coefficients))
	for i, c := range coefficients {
		fieldCoeffs[i] = field.NewElementFromInt64(c)
	}
	return NewPolynomial(fieldCoeffs)
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Field returns the field the polynomial is defined over.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Coefficient returns the coefficient of the given degree, or zero if out
// of range.
func (p *Polynomial) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	return p.coefficients[len(p.coefficients)-1]
}

// Coefficients returns a copy of the coefficient slice.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Eval evaluates the polynomial at x using Horner's rule.
func (p *Polynomial) Eval(x *FieldElement) *FieldElement {
	if !x.Field().Equals(p.field) {
		panic("cannot evaluate polynomial at point from different field")
	}
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Add adds two polynomials pointwise.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot add polynomials from different fields")
	}
	n := max(len(p.coefficients), len(other.coefficients))
	coeffs := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		coeffs[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return NewPolynomial(coeffs)
}

// Sub subtracts other from p pointwise.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot subtract polynomials from different fields")
	}
	n := max(len(p.coefficients), len(other.coefficients))
	coeffs := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		coeffs[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return NewPolynomial(coeffs)
}

// Mul multiplies two polynomials in O(d1*d2).
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot multiply polynomials from different fields")
	}
	coeffs := make([]*FieldElement, p.Degree()+other.Degree()+1)
	for i := range coeffs {
		coeffs[i] = p.field.Zero()
	}
	for i, c1 := range p.coefficients {
		if c1.IsZero() {
			continue
		}
		for j, c2 := range other.coefficients {
			coeffs[i+j] = coeffs[i+j].Add(c1.Mul(c2))
		}
	}
	return NewPolynomial(coeffs)
}

// MulScalar scales every coefficient by scalar.
func (p *Polynomial) MulScalar(scalar *FieldElement) (*Polynomial, error) {
	if !scalar.Field().Equals(p.field) {
		return nil, fmt.Errorf("cannot multiply by scalar from different field")
	}
	coeffs := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		coeffs[i] = c.Mul(scalar)
	}
	return NewPolynomial(coeffs)
}

// Div performs polynomial long division, returning quotient and remainder.
func (p *Polynomial) Div(other *Polynomial) (quotient, remainder *Polynomial, err error) {
	if !p.field.Equals(other.field) {
		return nil, nil, fmt.Errorf("cannot divide polynomials from different fields")
	}
	if other.Degree() == 0 && other.LeadingCoefficient().IsZero() {
		return nil, nil, fmt.Errorf("division by zero polynomial")
	}
	if other.Degree() > p.Degree() {
		zero, zerr := NewPolynomial([]*FieldElement{p.field.Zero()})
		if zerr != nil {
			return nil, nil, zerr
		}
		return zero, p, nil
	}

	rem := make([]*FieldElement, len(p.coefficients))
	copy(rem, p.coefficients)
	quot := make([]*FieldElement, p.Degree()-other.Degree()+1)
	leadOther := other.LeadingCoefficient()
	otherDeg := other.Degree()

	for i := len(quot) - 1; i >= 0; i-- {
		remDeg := len(rem) - 1
		if remDeg < otherDeg+i {
			quot[i] = p.field.Zero()
			continue
		}
		leadRem := rem[remDeg]
		q, derr := leadRem.Div(leadOther)
		if derr != nil {
			return nil, nil, fmt.Errorf("division failed: %w", derr)
		}
		quot[i] = q
		for j := 0; j <= otherDeg; j++ {
			idx := i + j
			rem[idx] = rem[idx].Sub(q.Mul(other.Coefficient(j)))
		}
		for len(rem) > 0 && rem[len(rem)-1].IsZero() {
			rem = rem[:len(rem)-1]
		}
		if len(rem) == 0 {
			rem = []*FieldElement{p.field.Zero()}
		}
	}

	quotientPoly, err := NewPolynomial(quot)
	if err != nil {
		return nil, nil, err
	}
	remainderPoly, err := NewPolynomial(rem)
	if err != nil {
		return nil, nil, err
	}
	return quotientPoly, remainderPoly, nil
}

// Point is an (x, y) pair used for interpolation.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// LagrangeInterpolation returns the unique lowest-degree polynomial passing
// through the given points. Fails with an error on duplicate x-coordinates,
// an empty point set, or a point from a different field.
func LagrangeInterpolation(points []Point, field *Field) (*Polynomial, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("need at least one point for interpolation")
	}
	for i, pt := range points {
		if !pt.X.Field().Equals(field) || !pt.Y.Field().Equals(field) {
			return nil, fmt.Errorf("point %d is from a different field", i)
		}
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return nil, fmt.Errorf("duplicate x-coordinate at indices %d and %d", i, j)
			}
		}
	}

	result, err := NewPolynomial([]*FieldElement{field.Zero()})
	if err != nil {
		return nil, err
	}

	for i, pt := range points {
		basis, err := NewPolynomial([]*FieldElement{field.One()})
		if err != nil {
			return nil, err
		}
		for j, other := range points {
			if i == j {
				continue
			}
			numerator, err := NewPolynomialFromInt64(field, []int64{0, 1})
			if err != nil {
				return nil, err
			}
			constant, err := NewPolynomial([]*FieldElement{other.X})
			if err != nil {
				return nil, err
			}
			numerator, err = numerator.Sub(constant)
			if err != nil {
				return nil, err
			}
			denom := pt.X.Sub(other.X)
			invDenom, err := field.One().Div(denom)
			if err != nil {
				return nil, err
			}
			numerator, err = numerator.MulScalar(invDenom)
			if err != nil {
				return nil, err
			}
			basis, err = basis.Mul(numerator)
			if err != nil {
				return nil, err
			}
		}
		term, err := basis.MulScalar(pt.Y)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(term)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// VanishingPolynomial returns the lowest-degree monic polynomial that
// vanishes on every point in xs, i.e. prod(X - xs[i]).
func VanishingPolynomial(xs []*FieldElement, field *Field) (*Polynomial, error) {
	result, err := NewPolynomial([]*FieldElement{field.One()})
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		factor, err := NewPolynomial([]*FieldElement{x.Neg(), field.One()})
		if err != nil {
			return nil, err
		}
		result, err = result.Mul(factor)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
