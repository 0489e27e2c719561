package fri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

func TestFRICompletenessAndSoundness(t *testing.T) {
	field := core.DefaultPrimeField
	g0 := core.DefaultGenerator

	// S6: degree-15 polynomial, L=64 domain, 5 queries.
	coeffs := make([]*core.FieldElement, 16)
	for i := range coeffs {
		coeffs[i] = field.NewElementFromInt64(int64(i*i + 3))
	}
	poly, err := core.NewPolynomial(coeffs)
	require.NoError(t, err)

	domain, err := trace.NewDomain(field, g0, 64, trace.CosetOffset)
	require.NoError(t, err)

	evals := make([]*core.FieldElement, 64)
	for i, x := range domain.Elements() {
		evals[i] = poly.Eval(x)
	}

	proverTranscript := utils.NewTranscript("sha256")
	prover := &Prover{}
	commitments, final, err := prover.GenerateProof(proverTranscript, field, evals, domain)
	require.NoError(t, err)

	indices := make([]int, 5)
	for i := range indices {
		indices[i] = proverTranscript.DrawInt(field, 0, 64)
	}
	layerProofs, err := prover.Query(indices)
	require.NoError(t, err)

	verifierTranscript := utils.NewTranscript("sha256")
	ok, err := Verify(verifierTranscript, field, g0, commitments, final, 64, trace.CosetOffset, layerProofs, indices)
	require.NoError(t, err)
	require.True(t, ok)

	sameIndices := make([]int, 5)
	for i := range sameIndices {
		sameIndices[i] = verifierTranscript.DrawInt(field, 0, 64)
	}
	require.Equal(t, indices, sameIndices)

	// Perturbing fri_final by +1 must cause rejection.
	tamperedFinal := final.Add(field.One())
	verifierTranscript2 := utils.NewTranscript("sha256")
	ok2, err := Verify(verifierTranscript2, field, g0, commitments, tamperedFinal, 64, trace.CosetOffset, layerProofs, indices)
	require.NoError(t, err)
	require.False(t, ok2)
}

func TestFRIRejectsTamperedOpening(t *testing.T) {
	field := core.DefaultPrimeField
	g0 := core.DefaultGenerator

	coeffs := make([]*core.FieldElement, 8)
	for i := range coeffs {
		coeffs[i] = field.NewElementFromInt64(int64(i + 1))
	}
	poly, err := core.NewPolynomial(coeffs)
	require.NoError(t, err)

	domain, err := trace.NewDomain(field, g0, 32, trace.CosetOffset)
	require.NoError(t, err)

	evals := make([]*core.FieldElement, 32)
	for i, x := range domain.Elements() {
		evals[i] = poly.Eval(x)
	}

	proverTranscript := utils.NewTranscript("sha256")
	prover := &Prover{}
	commitments, final, err := prover.GenerateProof(proverTranscript, field, evals, domain)
	require.NoError(t, err)

	indices := []int{0, 1, 2}
	layerProofs, err := prover.Query(indices)
	require.NoError(t, err)

	layerProofs[0][0].Val = layerProofs[0][0].Val.Add(field.One())

	verifierTranscript := utils.NewTranscript("sha256")
	ok, err := Verify(verifierTranscript, field, g0, commitments, final, 32, trace.CosetOffset, layerProofs, indices)
	require.NoError(t, err)
	require.False(t, ok)
}
