package proteus

import (
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
)

// Params carries the settings a Prove/Verify pair must agree on: the
// query count and the Fiat-Shamir hash choice. The field, generator, LDE
// coset offset, and blowup rule are not part of Params; they are fixed
// package-level constants (see Field and CosetOffset).
type Params struct {
	// NumQueries is how many FRI/trace query indices are drawn.
	NumQueries int

	// HashFunc selects the transcript hash: "sha256" or "sha3". Merkle
	// commitments always use SHA-256.
	HashFunc string
}

// DefaultParams returns the canonical settings: 10 queries and SHA-256
// transcript chaining. The fixed constants used alongside them are
// p = 3*2^30+1, g0 = 5, coset offset s = 3, and blowup floor k = 4.
func DefaultParams() *Params {
	return &Params{
		NumQueries: 10,
		HashFunc:   "sha256",
	}
}

// Validate checks that Params describes a usable configuration.
func (p *Params) Validate() error {
	if p.NumQueries <= 0 {
		return newError(ErrInvalidTrace, "NumQueries must be positive", nil)
	}
	switch p.HashFunc {
	case "sha256", "sha3":
	default:
		return newError(ErrInvalidTrace, "HashFunc must be \"sha256\" or \"sha3\"", nil)
	}
	return nil
}

// Field returns the canonical field every Params shares.
func Field() *core.Field {
	return core.DefaultPrimeField
}

// CosetOffset returns the canonical LDE coset offset.
func CosetOffset() *core.FieldElement {
	return trace.CosetOffset
}
