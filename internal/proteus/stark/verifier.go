package stark

import (
	"math/big"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/composition"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/fri"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// Verify runs the STARK Verifier. It collapses every
// soundness-level failure into a single false return: no
// caller-visible distinction between which query, layer, or check failed.
func Verify(a air.AIR, proof *Proof, numQueries int, hashFunc string) bool {
	field := core.DefaultPrimeField
	g0 := core.DefaultGenerator

	k := trace.DeriveBlowup(a.ConstraintDegree())
	n := a.TraceLength()
	l := n * k

	transcript := utils.NewTranscript(hashFunc)
	transcript.Send(proof.TraceRoot)

	numTransition := air.NumTransitionConstraints(a)
	alphas := make([]*core.FieldElement, numTransition)
	for i := range alphas {
		alphas[i] = transcript.DrawFieldElement(field)
	}
	boundaries := a.BoundaryConstraints()
	betas := make([]*core.FieldElement, len(boundaries))
	for i := range betas {
		betas[i] = transcript.DrawFieldElement(field)
	}

	if len(proof.TraceQueries) != numQueries {
		return false
	}

	indices := make([]int, numQueries)
	for i, tq := range proof.TraceQueries {
		indices[i] = tq.Idx
	}

	friOK, err := fri.Verify(transcript, field, g0, proof.FRICommitments, proof.FRIFinal, l, trace.CosetOffset, proof.FRILayerProofs, indices)
	if err != nil || !friOK {
		return false
	}

	redrawn := make([]int, numQueries)
	for i := range redrawn {
		redrawn[i] = transcript.DrawInt(field, 0, l)
	}
	for i := range redrawn {
		if redrawn[i] != indices[i] {
			return false
		}
	}

	g, err := field.GeneratorOfOrder(g0, int64(n))
	if err != nil {
		return false
	}
	dLDEGenerator, err := field.GeneratorOfOrder(g0, int64(l))
	if err != nil {
		return false
	}

	for _, tq := range proof.TraceQueries {
		if tq.NextIdx != (tq.Idx+k)%l {
			return false
		}
		if len(tq.Val) != a.TraceWidth() || len(tq.NextVal) != a.TraceWidth() {
			return false
		}
		if !core.VerifyMerkleProof(proof.TraceRoot, serializeRow(tq.Val), tq.Path, tq.Idx) {
			return false
		}
		if !core.VerifyMerkleProof(proof.TraceRoot, serializeRow(tq.NextVal), tq.NextPath, tq.NextIdx) {
			return false
		}

		x := trace.CosetOffset.Mul(dLDEGenerator.Exp(big.NewInt(int64(tq.Idx))))
		expectedQ := composition.EvaluateAt(a, field, g, n, k, x, tq.Val, tq.NextVal, alphas, betas, boundaries)

		if len(proof.FRILayerProofs) == 0 {
			return false
		}
		var opened *core.FieldElement
		for _, opening := range proof.FRILayerProofs[0] {
			if opening.Idx == tq.Idx {
				opened = opening.Val
				break
			}
		}
		if opened == nil {
			return false
		}
		if !expectedQ.Equal(opened) {
			return false
		}
	}

	return true
}
