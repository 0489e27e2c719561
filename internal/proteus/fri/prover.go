// Package fri implements the Fast Reed-Solomon Interactive Oracle Proof
// of Proximity: commit-phase folding and query-phase Merkle openings
// of Proximity.
package fri

import (
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

type layer struct {
	values []*core.FieldElement
	domain *trace.Domain
	tree   *core.MerkleTree
}

// Prover runs the FRI commit phase over a sequence of evaluations and
// retains every intermediate layer so Query can later open them.
type Prover struct {
	layers []layer
	field  *core.Field
}

// GenerateProof runs the commit phase over evals (the
// composition polynomial's evaluations on domain, a coset of size L).
// It commits each layer's Merkle root, sends it to the transcript, draws
// a folding challenge, and halves the domain -- looping until a single
// value remains. Returns the per-layer commitment roots and the final
// constant.
func (p *Prover) GenerateProof(transcript *utils.Transcript, field *core.Field, evals []*core.FieldElement, domain *trace.Domain) (commitments [][]byte, final *core.FieldElement, err error) {
	p.field = field
	values := evals
	current := domain

	for {
		leaves := make([][]byte, len(values))
		for i, v := range values {
			leaves[i] = v.Bytes()
		}
		tree, err := core.NewMerkleTree(leaves)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to commit FRI layer: %w", err)
		}
		commitments = append(commitments, tree.Root())
		transcript.Send(tree.Root())
		p.layers = append(p.layers, layer{values: values, domain: current, tree: tree})

		if len(values) == 1 {
			break
		}

		beta := transcript.DrawFieldElement(field)
		values, err = fold(values, current, beta)
		if err != nil {
			return nil, nil, err
		}
		current, err = current.Halve()
		if err != nil {
			return nil, nil, err
		}
	}

	final = values[0]
	return commitments, final, nil
}

// fold computes the next FRI layer from the current one:
//
//	even = (v[i] + v[i+L/2]) / 2
//	odd  = (v[i] - v[i+L/2]) / (2x)
//	next[i] = even + beta*odd
func fold(values []*core.FieldElement, domain *trace.Domain, beta *core.FieldElement) ([]*core.FieldElement, error) {
	field := values[0].Field()
	half := len(values) / 2
	two := field.NewElementFromInt64(2)
	twoInv, err := two.Inv()
	if err != nil {
		return nil, fmt.Errorf("field has no inverse of 2: %w", err)
	}

	elements := domain.Elements()
	next := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		x := elements[i]
		vPos := values[i]
		vNeg := values[i+half]

		even := vPos.Add(vNeg).Mul(twoInv)

		xInv, err := x.Inv()
		if err != nil {
			return nil, fmt.Errorf("domain point has no inverse: %w", err)
		}
		odd := vPos.Sub(vNeg).Mul(twoInv).Mul(xInv)

		next[i] = even.Add(beta.Mul(odd))
	}
	return next, nil
}

// QueryOpening is one layer's revealed value pair for a queried index,
// matching the wire schema's fri_layer_proofs entries.
type QueryOpening struct {
	Idx          int
	Val          *core.FieldElement
	Path         []core.ProofNode
	PartnerIdx   int
	PartnerVal   *core.FieldElement
	PartnerPath  []core.ProofNode
}

// Query opens every non-final layer at the given top-layer indices. For
// each layer, partner = (idx + halfLen) mod len, and the index carried
// into the next layer is idx mod halfLen.
func (p *Prover) Query(indices []int) ([][]QueryOpening, error) {
	if len(p.layers) == 0 {
		return nil, fmt.Errorf("no layers committed; call GenerateProof first")
	}

	current := append([]int{}, indices...)
	out := make([][]QueryOpening, 0, len(p.layers)-1)

	for li := 0; li < len(p.layers)-1; li++ {
		l := p.layers[li]
		half := len(l.values) / 2
		openings := make([]QueryOpening, len(current))
		next := make([]int, len(current))

		for qi, idx := range current {
			partner := (idx + half) % len(l.values)

			path, err := l.tree.AuthPath(idx)
			if err != nil {
				return nil, err
			}
			partnerPath, err := l.tree.AuthPath(partner)
			if err != nil {
				return nil, err
			}

			openings[qi] = QueryOpening{
				Idx:         idx,
				Val:         l.values[idx],
				Path:        path,
				PartnerIdx:  partner,
				PartnerVal:  l.values[partner],
				PartnerPath: partnerPath,
			}
			next[qi] = idx % half
		}

		out = append(out, openings)
		current = next
	}

	return out, nil
}
