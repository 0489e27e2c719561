// Package proteus is the public API for a transparent STARK proving
// system: build an algebraic execution trace, prove it, and verify the
// resulting proof against only its public inputs.
//
// # Quick start
//
//	params := proteus.DefaultParams()
//	proof, err := proteus.Prove(air, trace, params, zerolog.Nop())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok := proteus.Verify(air, proof, params, zerolog.Nop())
//
// Implementation details live under internal/proteus and can change
// without breaking this package's API.
package proteus

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/stark"
	internaltrace "github.com/proteus-stark/proteus/internal/proteus/trace"
)

// Re-exported core types so callers never import internal/proteus directly.
type (
	FieldElement = core.FieldElement
	Row          = air.Row
	AIR          = air.AIR
	Trace        = internaltrace.Trace
	Proof        = stark.Proof
)

// NewTrace builds a Trace from its rows, rejecting a non-power-of-two
// length or ragged rows.
func NewTrace(rows []Row) (*Trace, error) {
	t, err := internaltrace.NewTrace(rows)
	if err != nil {
		return nil, newError(ErrInvalidTrace, "failed to construct trace", err)
	}
	return t, nil
}

// Prove generates a proof that trace satisfies a's constraints. logger
// is optional; pass zerolog.Nop() (or a zero Logger) for silence.
func Prove(a AIR, t *Trace, params *Params, logger zerolog.Logger) (*Proof, error) {
	if params == nil {
		params = DefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Int("trace_width", a.TraceWidth()).
		Int("trace_length", a.TraceLength()).
		Int("num_queries", params.NumQueries).
		Msg("proteus: starting proof generation")

	proof, err := stark.Prove(a, t, params.NumQueries, params.HashFunc)
	if err != nil {
		logger.Error().Err(err).Msg("proteus: proof generation failed")
		return nil, classifyProveError(err)
	}

	logger.Info().
		Int("fri_layers", len(proof.FRICommitments)).
		Msg("proteus: proof generation complete")
	return proof, nil
}

// Verify checks proof against a's constraints and public inputs. It
// returns false for every soundness failure and every malformed-input
// condition alike; logger receives any Params validation error and the
// final verdict, but not which check rejected the proof.
func Verify(a AIR, proof *Proof, params *Params, logger zerolog.Logger) bool {
	if params == nil {
		params = DefaultParams()
	}
	if err := params.Validate(); err != nil {
		logger.Error().Err(err).Msg("proteus: invalid params")
		return false
	}

	ok := stark.Verify(a, proof, params.NumQueries, params.HashFunc)
	if ok {
		logger.Info().Msg("proteus: proof accepted")
	} else {
		logger.Warn().Msg("proteus: proof rejected")
	}
	return ok
}

// ProofToJSON renders proof in its canonical wire schema.
func ProofToJSON(proof *Proof) ([]byte, error) {
	data, err := proof.ToJSON()
	if err != nil {
		return nil, newError(ErrProofFormat, "failed to serialize proof", err)
	}
	return data, nil
}

// ProofFromJSON parses a proof from its canonical wire schema.
func ProofFromJSON(data []byte) (*Proof, error) {
	proof, err := stark.ProofFromJSON(data, Field())
	if err != nil {
		return nil, newError(ErrProofFormat, "failed to parse proof", err)
	}
	return proof, nil
}

// classifyProveError maps an internal failure to its public ErrorCode.
// stark.Prove already distinguishes these by message prefix; this keeps
// that distinction visible to callers doing errors.Is/As.
func classifyProveError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "invalid trace"):
		return newError(ErrInvalidTrace, msg, err)
	case strings.Contains(msg, "capacity error"):
		return newError(ErrCapacity, msg, err)
	case strings.Contains(msg, "inverse"), strings.Contains(msg, "subgroup"), strings.Contains(msg, "duplicate"):
		return newError(ErrAlgebra, msg, err)
	default:
		return newError(ErrUnknown, msg, err)
	}
}
