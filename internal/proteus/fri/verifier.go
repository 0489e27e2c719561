package fri

import (
	"fmt"
	"math/big"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/utils"
)

// Verify replays the FRI transcript and checks every queried opening,
// It returns false (never an error) for any soundness
// failure; a non-nil error indicates malformed input shape rather than a
// false proof, so format errors stay distinct from verification failures
// rather than a false proof.
func Verify(
	transcript *utils.Transcript,
	field *core.Field,
	g0 *core.FieldElement,
	commitments [][]byte,
	final *core.FieldElement,
	domainLength int,
	domainOffset *core.FieldElement,
	layerProofs [][]QueryOpening,
	indices []int,
) (bool, error) {
	if len(commitments) == 0 {
		return false, fmt.Errorf("no commitments to verify")
	}
	if len(layerProofs) != len(commitments)-1 {
		return false, fmt.Errorf("expected %d layer proofs, got %d", len(commitments)-1, len(layerProofs))
	}

	betas := make([]*core.FieldElement, 0, len(commitments)-1)
	for i, root := range commitments {
		transcript.Send(root)
		if i < len(commitments)-1 {
			betas = append(betas, transcript.DrawFieldElement(field))
		}
	}

	generator, err := field.GeneratorOfOrder(g0, int64(domainLength))
	if err != nil {
		return false, fmt.Errorf("failed to derive domain generator: %w", err)
	}
	offset := domainOffset
	length := domainLength

	two := field.NewElementFromInt64(2)
	twoInv, err := two.Inv()
	if err != nil {
		return false, fmt.Errorf("field has no inverse of 2: %w", err)
	}

	if len(layerProofs) > 0 {
		if len(layerProofs[0]) != len(indices) {
			return false, fmt.Errorf("expected %d top-layer queries, got %d", len(indices), len(layerProofs[0]))
		}
		for qi, idx := range indices {
			if layerProofs[0][qi].Idx != idx {
				return false, nil
			}
		}
	}

	for layerIdx, queries := range layerProofs {
		root := commitments[layerIdx]
		half := length / 2
		beta := betas[layerIdx]

		for qi, q := range queries {
			if !core.VerifyMerkleProof(root, q.Val.Bytes(), q.Path, q.Idx) {
				return false, nil
			}
			if !core.VerifyMerkleProof(root, q.PartnerVal.Bytes(), q.PartnerPath, q.PartnerIdx) {
				return false, nil
			}
			if (q.Idx+half)%length != q.PartnerIdx {
				return false, nil
			}

			smallIdx := q.Idx % half
			x := offset.Mul(generator.Exp(bigIntOf(smallIdx)))

			var posVal, negVal *core.FieldElement
			if q.Idx < half {
				posVal, negVal = q.Val, q.PartnerVal
			} else {
				posVal, negVal = q.PartnerVal, q.Val
			}

			xInv, err := x.Inv()
			if err != nil {
				return false, fmt.Errorf("domain point has no inverse: %w", err)
			}
			even := posVal.Add(negVal).Mul(twoInv)
			odd := posVal.Sub(negVal).Mul(twoInv).Mul(xInv)
			folded := even.Add(beta.Mul(odd))

			if layerIdx+1 < len(layerProofs) {
				nextQuery := layerProofs[layerIdx+1][qi]
				if nextQuery.Idx != smallIdx {
					return false, nil
				}
				if !nextQuery.Val.Equal(folded) {
					return false, nil
				}
			} else {
				if !folded.Equal(final) {
					return false, nil
				}
			}
		}

		generator = generator.Mul(generator)
		offset = offset.Mul(offset)
		length /= 2
	}

	return true, nil
}

func bigIntOf(n int) *big.Int {
	return big.NewInt(int64(n))
}
