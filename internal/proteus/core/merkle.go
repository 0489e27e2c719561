package core

import (
	"crypto/sha256"
	"fmt"
)

// MerkleTree is a binary Merkle tree over SHA-256 of the serialized leaves.
// Odd layers duplicate the last node.
type MerkleTree struct {
	root   []byte
	leaves [][]byte
	levels [][][]byte
}

// NewMerkleTree builds a tree over the given leaf byte-strings.
func NewMerkleTree(leafData [][]byte) (*MerkleTree, error) {
	if len(leafData) == 0 {
		return &MerkleTree{root: []byte{}}, nil
	}

	leaves := make([][]byte, len(leafData))
	for i, item := range leafData {
		leaves[i] = hashLeaf(item)
	}

	levels := [][][]byte{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([][]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			var combined []byte
			if i+1 < len(current) {
				combined = append(append([]byte{}, current[i]...), current[i+1]...)
			} else {
				combined = append(append([]byte{}, current[i]...), current[i]...)
			}
			next = append(next, hashNode(combined))
		}
		levels = append(levels, next)
		current = next
	}

	return &MerkleTree{root: current[0], leaves: leaves, levels: levels}, nil
}

// Root returns the Merkle root.
func (mt *MerkleTree) Root() []byte {
	return mt.root
}

// NumLeaves returns the number of committed leaves.
func (mt *MerkleTree) NumLeaves() int {
	return len(mt.leaves)
}

// ProofNode is one sibling hash on an authentication path.
type ProofNode struct {
	Hash    []byte
	IsRight bool // true if the sibling sits to the right of the current node
}

// AuthPath returns the authentication path for leaf index, siblings listed
// bottom-up. A missing right sibling is the duplicate-of-self case.
func (mt *MerkleTree) AuthPath(index int) ([]ProofNode, error) {
	if index < 0 || index >= len(mt.leaves) {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, len(mt.leaves))
	}

	path := make([]ProofNode, 0, len(mt.levels)-1)
	current := index
	for level := 0; level < len(mt.levels)-1; level++ {
		layer := mt.levels[level]
		var siblingIdx int
		var isRight bool
		if current%2 == 0 {
			siblingIdx = current + 1
			isRight = true
		} else {
			siblingIdx = current - 1
			isRight = false
		}
		if siblingIdx >= len(layer) {
			siblingIdx = current
		}
		path = append(path, ProofNode{Hash: layer[siblingIdx], IsRight: isRight})
		current /= 2
	}
	return path, nil
}

// VerifyMerkleProof rehashes leaf upward along path and compares to root,
// odd index => sibling concatenates left;
// even => sibling concatenates right.
func VerifyMerkleProof(root []byte, leafData []byte, path []ProofNode, index int) bool {
	hash := hashLeaf(leafData)
	current := index
	for _, node := range path {
		var combined []byte
		if current%2 == 1 {
			combined = append(append([]byte{}, node.Hash...), hash...)
		} else {
			combined = append(append([]byte{}, hash...), node.Hash...)
		}
		hash = hashNode(combined)
		current /= 2
	}
	return bytesEqual(hash, root)
}

func hashLeaf(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func hashNode(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
