// Package stark orchestrates Trace/LDE construction, composition,
// and FRI into a complete Prover/Verifier pair with a JSON proof format
// with a JSON proof format.
package stark

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/fri"
)

// TraceQuery is one top-layer trace opening: the current and next row at
// a queried LDE index, each with its Merkle authentication path.
type TraceQuery struct {
	Idx      int
	Val      []*core.FieldElement
	Path     []core.ProofNode
	NextIdx  int
	NextVal  []*core.FieldElement
	NextPath []core.ProofNode
}

// Proof is the serialized proof bundle. A `boundary_proofs`
// field shows up in some serializers of this kind but is never populated
// by any Prover that doesn't use it; this type omits it rather than carrying a
// permanently-empty slot.
type Proof struct {
	TraceRoot      []byte
	FRICommitments [][]byte
	FRIFinal       *core.FieldElement
	FRILayerProofs [][]fri.QueryOpening
	TraceQueries   []TraceQuery
	PublicInputs   map[string]any
}

type wireQueryOpening struct {
	Idx         int      `json:"idx"`
	Val         uint64   `json:"val"`
	Path        []string `json:"path"`
	PartnerIdx  int      `json:"partner_idx"`
	PartnerVal  uint64   `json:"partner_val"`
	PartnerPath []string `json:"partner_path"`
}

type wireTraceQuery struct {
	Idx      int      `json:"idx"`
	Val      []uint64 `json:"val"`
	Path     []string `json:"path"`
	NextIdx  int      `json:"next_idx"`
	NextVal  []uint64 `json:"next_val"`
	NextPath []string `json:"next_path"`
}

type wireProof struct {
	TraceRoot      string               `json:"trace_root"`
	FRICommitments []string             `json:"fri_commitments"`
	FRIFinal       uint64               `json:"fri_final"`
	FRILayerProofs [][]wireQueryOpening `json:"fri_layer_proofs"`
	TraceQueries   []wireTraceQuery     `json:"trace_queries"`
	PublicInputs   map[string]any       `json:"public_inputs"`
}

func pathToHex(path []core.ProofNode) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = hex.EncodeToString(n.Hash)
	}
	return out
}

// hexToPath reconstructs a path from hex-encoded sibling hashes. The
// IsRight bit is not carried over the wire: VerifyMerkleProof derives the
// combination order from the queried index's parity at each level, not
// from a stored flag, so IsRight is left at its zero value here.
func hexToPath(hexes []string) ([]core.ProofNode, error) {
	out := make([]core.ProofNode, len(hexes))
	for i, h := range hexes {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("invalid hex in path entry %d: %w", i, err)
		}
		out[i] = core.ProofNode{Hash: b}
	}
	return out, nil
}

func fieldElementsToUint64(elems []*core.FieldElement) []uint64 {
	out := make([]uint64, len(elems))
	for i, e := range elems {
		out[i] = e.Uint64()
	}
	return out
}

func uint64sToFieldElements(field *core.Field, vals []uint64) []*core.FieldElement {
	out := make([]*core.FieldElement, len(vals))
	for i, v := range vals {
		out[i] = field.NewElementFromUint64(v)
	}
	return out
}

// ToJSON renders the proof in its canonical wire schema:
// lowercase hex strings with no 0x prefix, canonical JSON integers.
func (p *Proof) ToJSON() ([]byte, error) {
	w := wireProof{
		TraceRoot:      hex.EncodeToString(p.TraceRoot),
		FRICommitments: make([]string, len(p.FRICommitments)),
		FRIFinal:       p.FRIFinal.Uint64(),
		FRILayerProofs: make([][]wireQueryOpening, len(p.FRILayerProofs)),
		TraceQueries:   make([]wireTraceQuery, len(p.TraceQueries)),
		PublicInputs:   p.PublicInputs,
	}
	for i, c := range p.FRICommitments {
		w.FRICommitments[i] = hex.EncodeToString(c)
	}
	for i, layer := range p.FRILayerProofs {
		wl := make([]wireQueryOpening, len(layer))
		for j, q := range layer {
			wl[j] = wireQueryOpening{
				Idx:         q.Idx,
				Val:         q.Val.Uint64(),
				Path:        pathToHex(q.Path),
				PartnerIdx:  q.PartnerIdx,
				PartnerVal:  q.PartnerVal.Uint64(),
				PartnerPath: pathToHex(q.PartnerPath),
			}
		}
		w.FRILayerProofs[i] = wl
	}
	for i, tq := range p.TraceQueries {
		w.TraceQueries[i] = wireTraceQuery{
			Idx:      tq.Idx,
			Val:      fieldElementsToUint64(tq.Val),
			Path:     pathToHex(tq.Path),
			NextIdx:  tq.NextIdx,
			NextVal:  fieldElementsToUint64(tq.NextVal),
			NextPath: pathToHex(tq.NextPath),
		}
	}
	return json.Marshal(w)
}

// ProofFromJSON parses the canonical schema back into a Proof, reducing
// every integer into field, and decoding every hex string. Returns a
// ProofFormat-class error on malformed input, distinct from
// a verification failure.
func ProofFromJSON(data []byte, field *core.Field) (*Proof, error) {
	var w wireProof
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("malformed proof JSON: %w", err)
	}

	traceRoot, err := hex.DecodeString(w.TraceRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid trace_root hex: %w", err)
	}

	commitments := make([][]byte, len(w.FRICommitments))
	for i, h := range w.FRICommitments {
		c, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("invalid fri_commitments[%d] hex: %w", i, err)
		}
		commitments[i] = c
	}

	layerProofs := make([][]fri.QueryOpening, len(w.FRILayerProofs))
	for i, layer := range w.FRILayerProofs {
		ql := make([]fri.QueryOpening, len(layer))
		for j, wq := range layer {
			path, err := hexToPath(wq.Path)
			if err != nil {
				return nil, fmt.Errorf("fri_layer_proofs[%d][%d].path: %w", i, j, err)
			}
			partnerPath, err := hexToPath(wq.PartnerPath)
			if err != nil {
				return nil, fmt.Errorf("fri_layer_proofs[%d][%d].partner_path: %w", i, j, err)
			}
			ql[j] = fri.QueryOpening{
				Idx:         wq.Idx,
				Val:         field.NewElementFromUint64(wq.Val),
				Path:        path,
				PartnerIdx:  wq.PartnerIdx,
				PartnerVal:  field.NewElementFromUint64(wq.PartnerVal),
				PartnerPath: partnerPath,
			}
		}
		layerProofs[i] = ql
	}

	traceQueries := make([]TraceQuery, len(w.TraceQueries))
	for i, wq := range w.TraceQueries {
		path, err := hexToPath(wq.Path)
		if err != nil {
			return nil, fmt.Errorf("trace_queries[%d].path: %w", i, err)
		}
		nextPath, err := hexToPath(wq.NextPath)
		if err != nil {
			return nil, fmt.Errorf("trace_queries[%d].next_path: %w", i, err)
		}
		traceQueries[i] = TraceQuery{
			Idx:      wq.Idx,
			Val:      uint64sToFieldElements(field, wq.Val),
			Path:     path,
			NextIdx:  wq.NextIdx,
			NextVal:  uint64sToFieldElements(field, wq.NextVal),
			NextPath: nextPath,
		}
	}

	return &Proof{
		TraceRoot:      traceRoot,
		FRICommitments: commitments,
		FRIFinal:       field.NewElementFromUint64(w.FRIFinal),
		FRILayerProofs: layerProofs,
		TraceQueries:   traceQueries,
		PublicInputs:   w.PublicInputs,
	}, nil
}
