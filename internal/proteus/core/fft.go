package core

import "fmt"

// FFT computes the radix-2 Cooley-Tukey decimation-in-time transform of
// values (interpreted as polynomial coefficients, low-degree first) over
// the multiplicative subgroup generated by root, a primitive n-th root of
// unity where n = len(values) is a power of two.
func FFT(values []*FieldElement, root *FieldElement) ([]*FieldElement, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("cannot transform empty input")
	}
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("length must be a power of two, got %d", n)
	}
	if n == 1 {
		out := make([]*FieldElement, 1)
		out[0] = values[0]
		return out, nil
	}

	field := values[0].Field()
	nBig := field.NewElementFromInt64(int64(n))
	if !root.Exp(nBig.Big()).IsOne() {
		return nil, fmt.Errorf("root is not an n-th root of unity")
	}
	if n > 1 && root.Exp(field.NewElementFromInt64(int64(n/2)).Big()).IsOne() {
		return nil, fmt.Errorf("root is not a primitive n-th root of unity")
	}

	return fftRecursive(values, root)
}

func fftRecursive(values []*FieldElement, root *FieldElement) ([]*FieldElement, error) {
	n := len(values)
	if n == 1 {
		return []*FieldElement{values[0]}, nil
	}

	evens := make([]*FieldElement, n/2)
	odds := make([]*FieldElement, n/2)
	for i := 0; i < n/2; i++ {
		evens[i] = values[2*i]
		odds[i] = values[2*i+1]
	}

	rootSquared := root.Mul(root)
	evenFFT, err := fftRecursive(evens, rootSquared)
	if err != nil {
		return nil, err
	}
	oddFFT, err := fftRecursive(odds, rootSquared)
	if err != nil {
		return nil, err
	}

	out := make([]*FieldElement, n)
	current := root.Field().One()
	for i := 0; i < n/2; i++ {
		term := current.Mul(oddFFT[i])
		out[i] = evenFFT[i].Add(term)
		out[i+n/2] = evenFFT[i].Sub(term)
		current = current.Mul(root)
	}
	return out, nil
}

// IFFT computes the inverse transform: FFT with root^-1, scaled by 1/n.
func IFFT(values []*FieldElement, root *FieldElement) ([]*FieldElement, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("cannot transform empty input")
	}
	field := values[0].Field()

	rootInv, err := root.Inv()
	if err != nil {
		return nil, fmt.Errorf("root has no inverse: %w", err)
	}
	transformed, err := FFT(values, rootInv)
	if err != nil {
		return nil, err
	}

	nInv, err := field.NewElementFromInt64(int64(n)).Inv()
	if err != nil {
		return nil, fmt.Errorf("length has no inverse in field: %w", err)
	}
	out := make([]*FieldElement, n)
	for i, v := range transformed {
		out[i] = v.Mul(nInv)
	}
	return out, nil
}

// CosetIFFT recovers the coefficients of P(x) given its evaluations on the
// coset {s, s*root, s*root^2, ...}. It runs IFFT with root to recover the
// coefficients of Q(z) = P(s*z), then scales the i-th coefficient by
// s^-i.
func CosetIFFT(values []*FieldElement, root, offset *FieldElement) ([]*FieldElement, error) {
	coeffsOfQ, err := IFFT(values, root)
	if err != nil {
		return nil, err
	}
	offsetInv, err := offset.Inv()
	if err != nil {
		return nil, fmt.Errorf("coset offset has no inverse: %w", err)
	}
	out := make([]*FieldElement, len(coeffsOfQ))
	scale := offset.Field().One()
	for i, c := range coeffsOfQ {
		out[i] = c.Mul(scale)
		scale = scale.Mul(offsetInv)
	}
	return out, nil
}
