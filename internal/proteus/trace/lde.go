package trace

import (
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// CosetOffset is the fixed LDE coset offset s = 3.
var CosetOffset = core.DefaultPrimeField.NewElementFromInt64(3)

// DefaultBlowup is the default blowup factor k = 4.
const DefaultBlowup = 4

// DeriveBlowup computes the blowup factor both Prover and Verifier MUST
// derive identically from the AIR's constraint degree: the smallest
// power of two >= degree+1, floored at DefaultBlowup (the
// authoritative derivation rule, replacing the source's Prover/Verifier
// asymmetry between a hardcoded 4 and a derived value).
func DeriveBlowup(degree int) int {
	k := DefaultBlowup
	for k < degree+1 {
		k *= 2
	}
	return k
}

// LDE is the Reed-Solomon low-degree extension of a Trace: for each
// column, the unique degree-<N polynomial interpolating it on D_trace,
// evaluated on every point of D_lde.
type LDE struct {
	Width      int
	TraceLen   int
	Blowup     int
	DTrace     *Domain
	DLDE       *Domain
	ColumnPoly []*core.Polynomial        // one interpolating polynomial per column
	Rows       [][]*core.FieldElement    // Rows[i][j]: column j evaluated at DLDE point i
}

// BuildLDE constructs the LDE of t with the given blowup factor k.
func BuildLDE(t *Trace, k int) (*LDE, error) {
	if !utils.IsPowerOfTwo(k) {
		return nil, fmt.Errorf("blowup factor must be a power of two, got %d", k)
	}
	field := core.DefaultPrimeField
	g0 := core.DefaultGenerator

	dTrace, err := NewDomain(field, g0, t.Length(), field.One())
	if err != nil {
		return nil, fmt.Errorf("failed to build trace domain: %w", err)
	}
	ldeLen := t.Length() * k
	dLDE, err := NewDomain(field, g0, ldeLen, CosetOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to build LDE domain: %w", err)
	}

	traceElements := dTrace.Elements()
	ldeElements := dLDE.Elements()

	columnPolys := make([]*core.Polynomial, t.Width())
	columnEvals := make([][]*core.FieldElement, t.Width())

	for col := 0; col < t.Width(); col++ {
		points := make([]core.Point, t.Length())
		colValues := t.Column(col)
		for i, x := range traceElements {
			points[i] = core.Point{X: x, Y: colValues[i]}
		}
		poly, err := core.LagrangeInterpolation(points, field)
		if err != nil {
			return nil, fmt.Errorf("failed to interpolate column %d: %w", col, err)
		}
		columnPolys[col] = poly

		evals := make([]*core.FieldElement, ldeLen)
		for i, x := range ldeElements {
			evals[i] = poly.Eval(x)
		}
		columnEvals[col] = evals
	}

	rows := make([][]*core.FieldElement, ldeLen)
	for i := 0; i < ldeLen; i++ {
		row := make([]*core.FieldElement, t.Width())
		for col := 0; col < t.Width(); col++ {
			row[col] = columnEvals[col][i]
		}
		rows[i] = row
	}

	return &LDE{
		Width:      t.Width(),
		TraceLen:   t.Length(),
		Blowup:     k,
		DTrace:     dTrace,
		DLDE:       dLDE,
		ColumnPoly: columnPolys,
		Rows:       rows,
	}, nil
}

// EvaluationOf returns the polynomial interpolating column col evaluated at
// point x, without consulting the precomputed LDE rows.
func (l *LDE) EvaluationOf(col int, x *core.FieldElement) *core.FieldElement {
	return l.ColumnPoly[col].Eval(x)
}
