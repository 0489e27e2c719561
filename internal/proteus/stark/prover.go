package stark

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/composition"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/fri"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// serializeRow renders a trace/LDE row as the Merkle leaf bytes: each
// field element as a 4-byte big-endian word (p < 2^32), concatenated in
// column order. A fixed width keeps leaf encoding unambiguous, unlike a
// decimal-string rendering.
func serializeRow(row []*core.FieldElement) []byte {
	out := make([]byte, 4*len(row))
	for i, e := range row {
		binary.BigEndian.PutUint32(out[4*i:4*i+4], uint32(e.Uint64()))
	}
	return out
}

// Prove runs the STARK Prover: builds the LDE, commits
// to it, draws constraint-combination challenges, builds the composition
// polynomial, runs FRI, and opens both the trace and FRI layers at the
// drawn query indices.
func Prove(a air.AIR, t *trace.Trace, numQueries int, hashFunc string) (*Proof, error) {
	field := core.DefaultPrimeField

	if t.Length() != a.TraceLength() {
		return nil, fmt.Errorf("invalid trace: length %d does not match AIR length %d", t.Length(), a.TraceLength())
	}
	if t.Width() != a.TraceWidth() {
		return nil, fmt.Errorf("invalid trace: width %d does not match AIR width %d", t.Width(), a.TraceWidth())
	}

	k := trace.DeriveBlowup(a.ConstraintDegree())
	lde, err := trace.BuildLDE(t, k)
	if err != nil {
		return nil, fmt.Errorf("failed to build LDE: %w", err)
	}
	l := t.Length() * k

	leaves := make([][]byte, l)
	for i, row := range lde.Rows {
		leaves[i] = serializeRow(row)
	}
	traceTree, err := core.NewMerkleTree(leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to commit trace LDE: %w", err)
	}

	transcript := utils.NewTranscript(hashFunc)
	transcript.Send(traceTree.Root())

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

	qEvals := composition.Evaluate(a, lde, alphas, betas)

	// Capacity check: the composition polynomial's degree must fit in a
	// power-of-two stride of D_lde; fail with a
	// CapacityError-class error otherwise.
	d := a.ConstraintDegree()
	expectedDegree := (d-1)*t.Length() + (t.Length() - 1)
	neededLen := utils.NextPowerOfTwo(expectedDegree + 1)
	if neededLen > l {
		return nil, fmt.Errorf("capacity error: constraint degree %d requires stride length %d exceeding LDE size %d", d, neededLen, l)
	}
	stride := l / neededLen
	subGenerator := lde.DLDE.Generator.Exp(big.NewInt(int64(stride)))
	subEvals := make([]*core.FieldElement, neededLen)
	for i := range subEvals {
		subEvals[i] = qEvals[i*stride]
	}
	qPoly, err := core.CosetIFFT(subEvals, subGenerator, lde.DLDE.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to recover composition polynomial degree: %w", err)
	}

	// Spot-check the recovered low-degree polynomial against evaluations
	// outside the strided subset it was fit to. A trace violating the
	// AIR's constraints produces a composition quotient that is not
	// actually low-degree, so it disagrees with qPoly off the subset.
	ldePoints := lde.DLDE.Elements()
	checks := 4 * stride
	if checks > l {
		checks = l
	}
	for i := 1; i < checks; i++ {
		if i%stride == 0 {
			continue
		}
		if !qPoly.Eval(ldePoints[i]).Equal(qEvals[i]) {
			return nil, fmt.Errorf("capacity error: trace does not satisfy the AIR's constraints")
		}
	}

	friProver := &fri.Prover{}
	commitments, final, err := friProver.GenerateProof(transcript, field, qEvals, lde.DLDE)
	if err != nil {
		return nil, fmt.Errorf("FRI commit phase failed: %w", err)
	}

	indices := make([]int, numQueries)
	for i := range indices {
		indices[i] = transcript.DrawInt(field, 0, l)
	}

	layerProofs, err := friProver.Query(indices)
	if err != nil {
		return nil, fmt.Errorf("FRI query phase failed: %w", err)
	}

	traceQueries := make([]TraceQuery, numQueries)
	for i, idx := range indices {
		nextIdx := (idx + k) % l
		path, err := traceTree.AuthPath(idx)
		if err != nil {
			return nil, err
		}
		nextPath, err := traceTree.AuthPath(nextIdx)
		if err != nil {
			return nil, err
		}
		traceQueries[i] = TraceQuery{
			Idx:      idx,
			Val:      lde.Rows[idx],
			Path:     path,
			NextIdx:  nextIdx,
			NextVal:  lde.Rows[nextIdx],
			NextPath: nextPath,
		}
	}

	return &Proof{
		TraceRoot:      traceTree.Root(),
		FRICommitments: commitments,
		FRIFinal:       final,
		FRILayerProofs: layerProofs,
		TraceQueries:   traceQueries,
		PublicInputs:   a.PublicInputs(),
	}, nil
}
