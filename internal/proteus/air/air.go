// Package air defines the Algebraic Intermediate Representation contract
// the capability set every illustrative computation
// (examples/fibonacci, examples/cubic, examples/rollup) implements and the
// only thing the STARK prover/verifier know about a computation.
package air

import "github.com/proteus-stark/proteus/internal/proteus/core"

// Row is one step of an execution trace: one field element per column.
type Row = []*core.FieldElement

// BoundaryConstraint pins one register at one step to a public value.
type BoundaryConstraint struct {
	Step     int
	Register int
	Value    *core.FieldElement
}

// AIR is the capability set an algebraic execution trace must expose. It carries its
// dimensions and degree, a pure function evaluating transition
// constraints on two adjacent rows, its boundary constraints, and a
// serializable public-inputs record. Dispatch is by interface, no
// runtime type introspection.
type AIR interface {
	// TraceWidth is the number of registers (columns) per row.
	TraceWidth() int
	// TraceLength is the number of steps (rows); MUST be a power of two.
	TraceLength() int
	// ConstraintDegree is the algebraic degree of the transition
	// constraints in the trace variables. Defaults to 1 for AIRs that
	// only compare adjacent registers linearly.
	ConstraintDegree() int
	// BoundaryConstraints lists every (step, register, value) pin.
	BoundaryConstraints() []BoundaryConstraint
	// EvaluateTransition returns one value per transition constraint,
	// each zero exactly when that constraint holds between current and
	// next. The number of returned values MUST be stable and discoverable
	// by evaluating on an all-zero pair of rows.
	EvaluateTransition(current, next Row) []*core.FieldElement
	// PublicInputs returns a JSON-safe record of public parameters.
	PublicInputs() map[string]any
}

// NumTransitionConstraints discovers the stable number of transition
// constraints by probing the AIR with an all-zero row pair. Both the
// Prover and Verifier call this so they always agree on the count.
func NumTransitionConstraints(a AIR) int {
	zeroRow := make(Row, a.TraceWidth())
	field := core.DefaultPrimeField
	for i := range zeroRow {
		zeroRow[i] = field.Zero()
	}
	return len(a.EvaluateTransition(zeroRow, zeroRow))
}
