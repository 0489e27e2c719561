package trace

import (
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// Trace is a W x N table of field elements: W = width, N = length. N MUST
// be a power of two; construction rejects any other length rather than
// padding (strict rejection, ruling out
// the zero-padding Trace variant the source also contains).
type Trace struct {
	width  int
	length int
	rows   [][]*core.FieldElement
}

// NewTrace builds a Trace from rows (row-major: rows[step][register]).
// Fails if length is not a power of two or any row's width disagrees.
func NewTrace(rows [][]*core.FieldElement) (*Trace, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("trace must have at least one row")
	}
	if !utils.IsPowerOfTwo(len(rows)) {
		return nil, fmt.Errorf("trace length %d is not a power of two", len(rows))
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", i, len(row), width)
		}
	}
	return &Trace{width: width, length: len(rows), rows: rows}, nil
}

// Width returns the number of registers (columns) per row.
func (t *Trace) Width() int { return t.width }

// Length returns the number of steps (rows).
func (t *Trace) Length() int { return t.length }

// Row returns the row at the given step.
func (t *Trace) Row(step int) []*core.FieldElement {
	return t.rows[step]
}

// Column returns the column values for the given register across every
// step, in step order.
func (t *Trace) Column(register int) []*core.FieldElement {
	out := make([]*core.FieldElement, t.length)
	for i, row := range t.rows {
		out[i] = row[register]
	}
	return out
}
