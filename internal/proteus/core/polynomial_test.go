package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomialInterpolationRoundTrip(t *testing.T) {
	f := DefaultPrimeField
	xs := []int64{1, 2, 3}
	ys := []int64{3, 7, 13}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: f.NewElementFromInt64(xs[i]), Y: f.NewElementFromInt64(ys[i])}
	}

	poly, err := LagrangeInterpolation(points, f)
	require.NoError(t, err)

	// S5: xs=[1,2,3], ys=[3,7,13] => coefficients (1,1,1), i.e. x^2+x+1.
	require.Equal(t, 2, poly.Degree())
	require.True(t, poly.Coefficient(0).Equal(f.NewElementFromInt64(1)))
	require.True(t, poly.Coefficient(1).Equal(f.NewElementFromInt64(1)))
	require.True(t, poly.Coefficient(2).Equal(f.NewElementFromInt64(1)))

	for i := range xs {
		require.True(t, poly.Eval(points[i].X).Equal(points[i].Y))
	}
}

func TestPolynomialInterpolationRejectsDuplicateNodes(t *testing.T) {
	f := DefaultPrimeField
	points := []Point{
		{X: f.NewElementFromInt64(1), Y: f.NewElementFromInt64(1)},
		{X: f.NewElementFromInt64(1), Y: f.NewElementFromInt64(2)},
	}
	_, err := LagrangeInterpolation(points, f)
	require.Error(t, err)
}

func TestPolynomialArithmeticDistributesOverEvaluation(t *testing.T) {
	f := DefaultPrimeField
	a, err := NewPolynomialFromInt64(f, []int64{1, 2, 3})
	require.NoError(t, err)
	b, err := NewPolynomialFromInt64(f, []int64{4, 5})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	product, err := a.Mul(b)
	require.NoError(t, err)

	x := f.NewElementFromInt64(7)
	require.True(t, sum.Eval(x).Equal(a.Eval(x).Add(b.Eval(x))))
	require.True(t, product.Eval(x).Equal(a.Eval(x).Mul(b.Eval(x))))
}

func TestPolynomialDivExact(t *testing.T) {
	f := DefaultPrimeField
	// (x-1)(x-2) = x^2 -3x +2
	p, err := NewPolynomialFromInt64(f, []int64{2, -3, 1})
	require.NoError(t, err)
	d, err := NewPolynomialFromInt64(f, []int64{-1, 1})
	require.NoError(t, err)

	q, r, err := p.Div(d)
	require.NoError(t, err)
	require.True(t, r.Coefficient(0).IsZero())
	require.Equal(t, 0, r.Degree())
	require.True(t, q.Eval(f.NewElementFromInt64(2)).Equal(f.Zero()))
}

func TestZeroPolynomialCanonical(t *testing.T) {
	f := DefaultPrimeField
	p, err := NewPolynomial([]*FieldElement{f.Zero(), f.Zero(), f.Zero()})
	require.NoError(t, err)
	require.Equal(t, 0, p.Degree())
	require.True(t, p.Coefficient(0).IsZero())
}
