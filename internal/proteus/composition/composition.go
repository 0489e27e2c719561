// Package composition builds the composition polynomial:
// a random linear combination of every transition and boundary constraint,
// divided by its vanishing polynomial, evaluated over the LDE domain.
package composition

import (
	"math/big"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
)

// Evaluate computes Q(x) for every x in lde's domain:
//
//	Q(x) = (sum_j alpha_j * C_j(x)) / Z_T(x)
//	     + sum_k beta_k * (T_r(x) - v_k) / (x - g^{s_k})
//
// where C_j(x) is the j-th transition constraint evaluated on
// (row(x), row(x * g')) -- looked up as lde.Rows[i] and
// lde.Rows[(i+k) mod L] -- and Z_T(x) = (x^N - 1)/(x - g^{N-1}).
func Evaluate(a air.AIR, l *trace.LDE, alphas, betas []*core.FieldElement) []*core.FieldElement {
	field := core.DefaultPrimeField
	n := l.TraceLen
	k := l.Blowup
	totalLen := n * k

	g := l.DTrace.Generator
	gNMinus1 := g.Exp(big.NewInt(int64(n - 1)))
	ldePoints := l.DLDE.Elements()

	boundaries := a.BoundaryConstraints()
	boundaryPoints := make([]*core.FieldElement, len(boundaries))
	for i, bc := range boundaries {
		boundaryPoints[i] = g.Exp(big.NewInt(int64(bc.Step)))
	}

	result := make([]*core.FieldElement, totalLen)

	for i := 0; i < totalLen; i++ {
		x := ldePoints[i]
		currentRow := l.Rows[i]
		nextRow := l.Rows[(i+k)%totalLen]

		constraints := a.EvaluateTransition(currentRow, nextRow)

		numerator := field.Zero()
		for j, c := range constraints {
			numerator = numerator.Add(alphas[j].Mul(c))
		}

		xPowN := x.Exp(big.NewInt(int64(n)))
		zNumerator := xPowN.Sub(field.One())
		zDenominator := x.Sub(gNMinus1)
		zT, err := zNumerator.Div(zDenominator)
		if err != nil {
			panic("vanishing polynomial denominator is zero on the LDE coset: " + err.Error())
		}
		term1, err := numerator.Div(zT)
		if err != nil {
			panic("transition quotient denominator is zero on the LDE coset: " + err.Error())
		}

		term2 := field.Zero()
		for idx, bc := range boundaries {
			tr := currentRow[bc.Register]
			numer := tr.Sub(bc.Value)
			denom := x.Sub(boundaryPoints[idx])
			frac, err := numer.Div(denom)
			if err != nil {
				panic("boundary divisor is zero on the LDE coset: " + err.Error())
			}
			term2 = term2.Add(betas[idx].Mul(frac))
		}

		result[i] = term1.Add(term2)
	}

	return result
}

// EvaluateAt recomputes Q(x) at a single LDE point x using only the
// opened current/next rows at that point -- the check the
// Verifier performs per query, without ever
// materializing the full LDE.
func EvaluateAt(a air.AIR, field *core.Field, g *core.FieldElement, n, blowup int, x *core.FieldElement, currentRow, nextRow air.Row, alphas, betas []*core.FieldElement, boundaries []air.BoundaryConstraint) *core.FieldElement {
	gNMinus1 := g.Exp(big.NewInt(int64(n - 1)))

	constraints := a.EvaluateTransition(currentRow, nextRow)
	numerator := field.Zero()
	for j, c := range constraints {
		numerator = numerator.Add(alphas[j].Mul(c))
	}

	xPowN := x.Exp(big.NewInt(int64(n)))
	zNumerator := xPowN.Sub(field.One())
	zDenominator := x.Sub(gNMinus1)
	zT, err := zNumerator.Div(zDenominator)
	if err != nil {
		panic("vanishing polynomial denominator is zero on the LDE coset: " + err.Error())
	}
	term1, err := numerator.Div(zT)
	if err != nil {
		panic("transition quotient denominator is zero on the LDE coset: " + err.Error())
	}

	term2 := field.Zero()
	for idx, bc := range boundaries {
		boundaryPoint := g.Exp(big.NewInt(int64(bc.Step)))
		tr := currentRow[bc.Register]
		numer := tr.Sub(bc.Value)
		denom := x.Sub(boundaryPoint)
		frac, err := numer.Div(denom)
		if err != nil {
			panic("boundary divisor is zero on the LDE coset: " + err.Error())
		}
		term2 = term2.Add(betas[idx].Mul(frac))
	}

	return term1.Add(term2)
}
