// Package core implements the finite-field, polynomial, Fourier-transform,
// and Merkle-authentication primitives the rest of proteus is built on.
package core

import (
	"fmt"
	"math/big"
)

// Field represents a finite field GF(p) with modular arithmetic operations.
type Field struct {
	modulus *big.Int
}

// FieldElement represents an element in a Field.
type FieldElement struct {
	field *Field
	value *big.Int
}

// NewField creates a finite field with the given prime modulus.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 2")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// NewFieldFromUint64 creates a finite field from a uint64 modulus.
func NewFieldFromUint64(modulus uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(modulus))
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Equals reports whether two fields share a modulus.
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// NewElement reduces value modulo the field and wraps it as an element.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: normalized}
}

// NewElementFromInt64 wraps an int64 as a field element.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 wraps a uint64 as a field element.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement {
	return f.NewElement(big.NewInt(0))
}

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement {
	return f.NewElement(big.NewInt(1))
}

// GeneratorOfOrder returns g0^((p-1)/n), a generator of the unique subgroup
// of order n. Fails with an error if n does not divide p-1 or n is zero,
// matching the FieldError::NoSubgroup condition.
func (f *Field) GeneratorOfOrder(g0 *FieldElement, n int64) (*FieldElement, error) {
	if n == 0 {
		return nil, fmt.Errorf("no subgroup of order 0")
	}
	pMinusOne := new(big.Int).Sub(f.modulus, big.NewInt(1))
	nBig := big.NewInt(n)
	remainder := new(big.Int).Mod(pMinusOne, nBig)
	if remainder.Sign() != 0 {
		return nil, fmt.Errorf("no subgroup of order %d: %d does not divide p-1", n, n)
	}
	exp := new(big.Int).Div(pMinusOne, nBig)
	return g0.Exp(exp), nil
}

// Field returns the field this element belongs to.
func (fe *FieldElement) Field() *Field {
	return fe.field
}

// Big returns a copy of the element's value as a big.Int in [0, p).
func (fe *FieldElement) Big() *big.Int {
	return new(big.Int).Set(fe.value)
}

// Uint64 returns the element's value as a uint64. Safe because p < 2^32.
func (fe *FieldElement) Uint64() uint64 {
	return fe.value.Uint64()
}

// Add performs field addition.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot add elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Add(fe.value, other.value))
}

// Sub performs field subtraction.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot subtract elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Sub(fe.value, other.value))
}

// Neg returns the additive inverse.
func (fe *FieldElement) Neg() *FieldElement {
	return fe.field.NewElement(new(big.Int).Neg(fe.value))
}

// Mul performs field multiplication.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot multiply elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Mul(fe.value, other.value))
}

// Inv computes the multiplicative inverse via the extended Euclidean
// algorithm. Fails with an error on zero, matching FieldError::Inverse.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, fmt.Errorf("cannot invert zero")
	}
	gcd := new(big.Int)
	x := new(big.Int)
	y := new(big.Int)
	gcd.GCD(x, y, fe.value, fe.field.modulus)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("inverse does not exist")
	}
	if x.Sign() < 0 {
		x.Add(x, fe.field.modulus)
	}
	return fe.field.NewElement(x), nil
}

// Div performs field division (multiplication by the inverse).
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if !fe.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot divide elements from different fields")
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("division failed: %w", err)
	}
	return fe.Mul(inv), nil
}

// Exp performs field exponentiation by a big.Int exponent.
func (fe *FieldElement) Exp(exponent *big.Int) *FieldElement {
	result := new(big.Int).Exp(fe.value, exponent, fe.field.modulus)
	return fe.field.NewElement(result)
}

// Square computes fe * fe.
func (fe *FieldElement) Square() *FieldElement {
	return fe.Mul(fe)
}

// Equal reports value and field equality.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	if !fe.field.Equals(other.field) {
		return false
	}
	return fe.value.Cmp(other.value) == 0
}

// IsZero reports whether the element is the additive identity.
func (fe *FieldElement) IsZero() bool {
	return fe.value.Sign() == 0
}

// IsOne reports whether the element is the multiplicative identity.
func (fe *FieldElement) IsOne() bool {
	return fe.value.Cmp(big.NewInt(1)) == 0
}

// String renders the element's canonical decimal value.
func (fe *FieldElement) String() string {
	return fe.value.String()
}

// Bytes returns the big-endian byte rendering of the element's value,
// used as the Merkle-leaf serialization for field elements.
func (fe *FieldElement) Bytes() []byte {
	return fe.value.Bytes()
}

// DefaultPrimeField and DefaultGenerator are the canonical process-wide
// field constants: p = 3*2^30+1, g0 = 5.
var (
	DefaultPrimeField, _ = NewFieldFromUint64(3221225473)
	DefaultGenerator     = DefaultPrimeField.NewElementFromInt64(5)
)
