// Package trace builds the execution table, its two arithmetic domains,
// and the Low-Degree Extension.
package trace

import (
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// Domain is a coset of a multiplicative subgroup: {offset * generator^i :
// i = 0..length-1}. Generalizes an offset/generator/length domain to
// the two-domain D_trace/D_lde model used here; the randomized-trace/
// quotient pipeline built on top of a similar domain elsewhere is
// dropped since trace blinding is an explicit Non-goal.
type Domain struct {
	Offset    *core.FieldElement
	Generator *core.FieldElement
	Length    int
}

// NewDomain builds a domain of the given power-of-two length with the
// given offset, using generator-of-order(length) rooted at g0.
func NewDomain(field *core.Field, g0 *core.FieldElement, length int, offset *core.FieldElement) (*Domain, error) {
	if !utils.IsPowerOfTwo(length) {
		return nil, fmt.Errorf("domain length must be a power of two, got %d", length)
	}
	gen, err := field.GeneratorOfOrder(g0, int64(length))
	if err != nil {
		return nil, fmt.Errorf("failed to derive domain generator: %w", err)
	}
	return &Domain{Offset: offset, Generator: gen, Length: length}, nil
}

// Elements returns every point of the domain, in order.
func (d *Domain) Elements() []*core.FieldElement {
	out := make([]*core.FieldElement, d.Length)
	current := d.Offset
	for i := 0; i < d.Length; i++ {
		out[i] = current
		current = current.Mul(d.Generator)
	}
	return out
}

// Halve returns the domain of half the length obtained by squaring both
// offset and generator.
func (d *Domain) Halve() (*Domain, error) {
	if d.Length < 2 {
		return nil, fmt.Errorf("cannot halve domain of length %d", d.Length)
	}
	return &Domain{
		Offset:    d.Offset.Mul(d.Offset),
		Generator: d.Generator.Mul(d.Generator),
		Length:    d.Length / 2,
	}, nil
}

// String renders a human-readable summary.
func (d *Domain) String() string {
	return fmt.Sprintf("Domain{length: %d, offset: %s, generator: %s}", d.Length, d.Offset, d.Generator)
}
