package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/proteus-stark/proteus/internal/proteus/core"
)

// Transcript implements the Fiat-Shamir channel: a
// 32-byte accumulator that Send absorbs messages into and Draw* derives
// challenges from. Both Prover and Verifier MUST perform sends/draws in
// identical order for the derived challenges to match.
type Transcript struct {
	state    []byte
	log      []string
	hashFunc string
}

// NewTranscript creates a transcript with an empty initial state. hashFunc
// selects the chaining hash: "sha256" (the canonical choice) or
// "sha3" (an alternate parameter-set backend, see SPEC_FULL.md §4).
func NewTranscript(hashFunc string) *Transcript {
	if hashFunc == "" {
		hashFunc = "sha256"
	}
	return &Transcript{
		state:    []byte{},
		log:      make([]string, 0, 64),
		hashFunc: hashFunc,
	}
}

// Send absorbs data into the transcript state: state <- H(state || data).
func (t *Transcript) Send(data []byte) {
	t.log = append(t.log, fmt.Sprintf("send:%s", hex.EncodeToString(data)))
	t.state = t.hash(append(append([]byte{}, t.state...), data...))
}

// DrawFieldElement derives the next challenge field element: state <-
// H(state); the first 8 bytes of the new state, read big-endian, are
// reduced mod the field's modulus.
func (t *Transcript) DrawFieldElement(field *core.Field) *core.FieldElement {
	t.state = t.hash(t.state)
	window := t.state
	if len(window) > 8 {
		window = window[:8]
	}
	val := new(big.Int).SetBytes(window)
	t.log = append(t.log, fmt.Sprintf("draw_field:%s", val.String()))
	return field.NewElement(val)
}

// DrawInt draws a field element and reduces it into [lo, hi) using
// val % (hi-lo) + lo. This reproduces the source's modulo-biased sampling
// Prover and Verifier built from this same function agree
// bit-for-bit, which is the compatibility requirement that matters.
func (t *Transcript) DrawInt(field *core.Field, lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("invalid draw range [%d, %d)", lo, hi))
	}
	fe := t.DrawFieldElement(field)
	rangeSize := big.NewInt(int64(hi - lo))
	val := new(big.Int).Mod(fe.Big(), rangeSize)
	return lo + int(val.Int64())
}

// State returns a copy of the current accumulator, for tests that assert
// determinism across independent instances.
func (t *Transcript) State() []byte {
	return append([]byte(nil), t.state...)
}

func (t *Transcript) hash(data []byte) []byte {
	switch t.hashFunc {
	case "sha3":
		h := sha3.Sum256(data)
		return h[:]
	default:
		h := sha256.Sum256(data)
		return h[:]
	}
}
