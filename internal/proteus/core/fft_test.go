package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFFTRoundTrip(t *testing.T) {
	f := DefaultPrimeField
	root, err := f.GeneratorOfOrder(DefaultGenerator, 8)
	require.NoError(t, err)

	values := make([]*FieldElement, 8)
	for i := range values {
		values[i] = f.NewElementFromInt64(int64(i*i + 1))
	}

	transformed, err := FFT(values, root)
	require.NoError(t, err)

	recovered, err := IFFT(transformed, root)
	require.NoError(t, err)

	for i := range values {
		require.True(t, values[i].Equal(recovered[i]), "index %d", i)
	}
}

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	f := DefaultPrimeField
	values := []*FieldElement{f.One(), f.One(), f.One()}
	_, err := FFT(values, DefaultGenerator)
	require.Error(t, err)
}

func TestCosetIFFTRecoversPolynomial(t *testing.T) {
	f := DefaultPrimeField
	poly, err := NewPolynomialFromInt64(f, []int64{3, 1, 4, 1})
	require.NoError(t, err)

	root, err := f.GeneratorOfOrder(DefaultGenerator, 4)
	require.NoError(t, err)
	offset := f.NewElementFromInt64(3)

	evals := make([]*FieldElement, 4)
	point := offset
	for i := 0; i < 4; i++ {
		evals[i] = poly.Eval(point)
		point = point.Mul(root)
	}

	coeffs, err := CosetIFFT(evals, root, offset)
	require.NoError(t, err)
	recovered, err := NewPolynomial(coeffs)
	require.NoError(t, err)

	for i := 0; i <= poly.Degree(); i++ {
		require.True(t, poly.Coefficient(i).Equal(recovered.Coefficient(i)))
	}
}
