package composition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
)

// fibAIR is a minimal two-register Fibonacci AIR used only to exercise
// composition.Evaluate/EvaluateAt without pulling in the examples packages.
type fibAIR struct {
	length int
	result *core.FieldElement
}

func (f *fibAIR) TraceWidth() int      { return 2 }
func (f *fibAIR) TraceLength() int     { return f.length }
func (f *fibAIR) ConstraintDegree() int { return 1 }

func (f *fibAIR) BoundaryConstraints() []air.BoundaryConstraint {
	field := core.DefaultPrimeField
	return []air.BoundaryConstraint{
		{Step: 0, Register: 0, Value: field.One()},
		{Step: 0, Register: 1, Value: field.One()},
		{Step: f.length - 1, Register: 1, Value: f.result},
	}
}

func (f *fibAIR) EvaluateTransition(current, next air.Row) []*core.FieldElement {
	c1 := next[0].Sub(current[1])
	c2 := next[1].Sub(current[0].Add(current[1]))
	return []*core.FieldElement{c1, c2}
}

func (f *fibAIR) PublicInputs() map[string]any {
	return map[string]any{"length": f.length}
}

func buildFibTrace(length int) (*trace.Trace, *core.FieldElement) {
	field := core.DefaultPrimeField
	rows := make([]air.Row, length)
	a, b := field.One(), field.One()
	rows[0] = air.Row{a, b}
	for i := 1; i < length; i++ {
		a, b = b, a.Add(b)
		rows[i] = air.Row{a, b}
	}
	tr, err := trace.NewTrace(rows)
	if err != nil {
		panic(err)
	}
	return tr, rows[length-1][1]
}

func TestCompositionEvaluateMatchesEvaluateAt(t *testing.T) {
	field := core.DefaultPrimeField
	g0 := core.DefaultGenerator

	tr, result := buildFibTrace(8)
	a := &fibAIR{length: 8, result: result}

	k := trace.DeriveBlowup(a.ConstraintDegree())
	lde, err := trace.BuildLDE(tr, k)
	require.NoError(t, err)

	alphas := []*core.FieldElement{field.NewElementFromInt64(7), field.NewElementFromInt64(11)}
	betas := []*core.FieldElement{
		field.NewElementFromInt64(3),
		field.NewElementFromInt64(5),
		field.NewElementFromInt64(9),
	}

	full := Evaluate(a, lde, alphas, betas)

	g, err := field.GeneratorOfOrder(g0, int64(a.length))
	require.NoError(t, err)

	boundaries := a.BoundaryConstraints()
	totalLen := a.length * k
	for i := 0; i < totalLen; i += 7 {
		x := lde.DLDE.Elements()[i]
		currentRow := lde.Rows[i]
		nextRow := lde.Rows[(i+k)%totalLen]
		at := EvaluateAt(a, field, g, a.length, k, x, currentRow, nextRow, alphas, betas, boundaries)
		require.True(t, full[i].Equal(at), "index %d: Evaluate and EvaluateAt disagree", i)
	}
}
