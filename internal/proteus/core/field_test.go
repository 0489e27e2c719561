package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldLaws(t *testing.T) {
	f := DefaultPrimeField
	a := f.NewElementFromInt64(17)
	b := f.NewElementFromInt64(9001)
	c := f.NewElementFromInt64(-4)

	require.True(t, a.Add(b).Equal(b.Add(a)))
	require.True(t, a.Add(b.Add(c)).Equal(a.Add(b).Add(c)))
	require.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))))
	require.True(t, a.Add(a.Neg()).IsZero())

	inv, err := a.Inv()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).IsOne())

	pMinusOne := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
	require.True(t, a.Exp(pMinusOne).IsOne())
}

func TestFieldInverseOfZeroFails(t *testing.T) {
	_, err := DefaultPrimeField.Zero().Inv()
	require.Error(t, err)
}

func TestGeneratorOfOrder(t *testing.T) {
	f := DefaultPrimeField
	g, err := f.GeneratorOfOrder(DefaultGenerator, 8)
	require.NoError(t, err)
	require.True(t, g.Exp(big.NewInt(8)).IsOne())
	require.False(t, g.Exp(big.NewInt(4)).IsOne())
}

func TestGeneratorOfOrderRejectsNonDivisor(t *testing.T) {
	f := DefaultPrimeField
	_, err := f.GeneratorOfOrder(DefaultGenerator, 5)
	require.Error(t, err)
}
