package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leavesFromInts(vals ...int64) [][]byte {
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = DefaultPrimeField.NewElementFromInt64(v).Bytes()
	}
	return out
}

func TestMerkleProofRoundTrip(t *testing.T) {
	data := leavesFromInts(1, 2, 3, 4, 5)
	tree, err := NewMerkleTree(data)
	require.NoError(t, err)

	for i, leaf := range data {
		path, err := tree.AuthPath(i)
		require.NoError(t, err)
		require.True(t, VerifyMerkleProof(tree.Root(), leaf, path, i))
	}
}

func TestMerkleProofRejectsTamper(t *testing.T) {
	data := leavesFromInts(10, 20, 30, 40)
	tree, err := NewMerkleTree(data)
	require.NoError(t, err)

	path, err := tree.AuthPath(2)
	require.NoError(t, err)
	require.True(t, VerifyMerkleProof(tree.Root(), data[2], path, 2))

	require.False(t, VerifyMerkleProof(tree.Root(), data[1], path, 2))

	tamperedRoot := append([]byte{}, tree.Root()...)
	tamperedRoot[0] ^= 0xFF
	require.False(t, VerifyMerkleProof(tamperedRoot, data[2], path, 2))

	tamperedPath := append([]ProofNode{}, path...)
	if len(tamperedPath) > 0 {
		h := append([]byte{}, tamperedPath[0].Hash...)
		h[0] ^= 0xFF
		tamperedPath[0].Hash = h
		require.False(t, VerifyMerkleProof(tree.Root(), data[2], tamperedPath, 2))
	}

	require.False(t, VerifyMerkleProof(tree.Root(), data[2], path, 1))
}

func TestMerkleAuthPathLength(t *testing.T) {
	data := leavesFromInts(1, 2, 3, 4, 5, 6, 7)
	tree, err := NewMerkleTree(data)
	require.NoError(t, err)
	path, err := tree.AuthPath(0)
	require.NoError(t, err)
	require.Len(t, path, 3)
}
