package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteus-stark/proteus/internal/proteus/core"
)

func TestTranscriptDeterministic(t *testing.T) {
	a := NewTranscript("sha256")
	b := NewTranscript("sha256")

	a.Send([]byte("hello"))
	b.Send([]byte("hello"))
	require.Equal(t, a.State(), b.State())

	fa := a.DrawFieldElement(core.DefaultPrimeField)
	fb := b.DrawFieldElement(core.DefaultPrimeField)
	require.True(t, fa.Equal(fb))
	require.Equal(t, a.State(), b.State())
}

func TestTranscriptPrefixDivergence(t *testing.T) {
	a := NewTranscript("sha256")
	b := NewTranscript("sha256")

	a.Send([]byte("alpha"))
	b.Send([]byte("beta"))

	fa := a.DrawFieldElement(core.DefaultPrimeField)
	fb := b.DrawFieldElement(core.DefaultPrimeField)
	require.False(t, fa.Equal(fb))
}

func TestDrawIntWithinRange(t *testing.T) {
	tr := NewTranscript("sha256")
	for i := 0; i < 50; i++ {
		v := tr.DrawInt(core.DefaultPrimeField, 5, 15)
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 15)
	}
}
