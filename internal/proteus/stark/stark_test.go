package stark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
)

// fibAIR mirrors examples/fibonacci without importing it, keeping this
// package's tests free of a dependency on the top-level examples tree.
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
	return map[string]any{"length": f.length, "result": f.result.Uint64()}
}

func buildFibTrace(t *testing.T, length int) (*trace.Trace, *core.FieldElement) {
	field := core.DefaultPrimeField
	rows := make([]air.Row, length)
	a, b := field.One(), field.One()
	rows[0] = air.Row{a, b}
	for i := 1; i < length; i++ {
		a, b = b, a.Add(b)
		rows[i] = air.Row{a, b}
	}
	tr, err := trace.NewTrace(rows)
	require.NoError(t, err)
	return tr, rows[length-1][1]
}

func TestProveVerifyCompleteness(t *testing.T) {
	tr, result := buildFibTrace(t, 16)
	a := &fibAIR{length: 16, result: result}

	proof, err := Prove(a, tr, 6, "sha256")
	require.NoError(t, err)
	require.True(t, Verify(a, proof, 6, "sha256"))
}

func TestProveVerifyRejectsTraceTamper(t *testing.T) {
	tr, result := buildFibTrace(t, 16)
	a := &fibAIR{length: 16, result: result}

	proof, err := Prove(a, tr, 6, "sha256")
	require.NoError(t, err)

	tampered := *proof
	tampered.TraceQueries = append([]TraceQuery{}, proof.TraceQueries...)
	tq := tampered.TraceQueries[0]
	tqCopy := tq
	tqCopy.Val = append([]*core.FieldElement{}, tq.Val...)
	tqCopy.Val[0] = tqCopy.Val[0].Add(core.DefaultPrimeField.One())
	tampered.TraceQueries[0] = tqCopy

	require.False(t, Verify(a, &tampered, 6, "sha256"))
}

func TestProveVerifyRejectsWrongResult(t *testing.T) {
	tr, result := buildFibTrace(t, 16)
	wrongResult := result.Add(core.DefaultPrimeField.One())
	a := &fibAIR{length: 16, result: wrongResult}

	_, err := Prove(a, tr, 6, "sha256")
	require.Error(t, err)
}

func TestProofJSONRoundTrip(t *testing.T) {
	tr, result := buildFibTrace(t, 8)
	a := &fibAIR{length: 8, result: result}

	proof, err := Prove(a, tr, 4, "sha256")
	require.NoError(t, err)

	data, err := proof.ToJSON()
	require.NoError(t, err)

	decoded, err := ProofFromJSON(data, core.DefaultPrimeField)
	require.NoError(t, err)

	require.True(t, Verify(a, decoded, 4, "sha256"))
}

func TestProveVerifyRejectsMismatchedQueryCount(t *testing.T) {
	tr, result := buildFibTrace(t, 8)
	a := &fibAIR{length: 8, result: result}

	proof, err := Prove(a, tr, 4, "sha256")
	require.NoError(t, err)

	require.False(t, Verify(a, proof, 5, "sha256"))
}
