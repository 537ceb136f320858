// SPDX-License-Identifier: MIT

package ring

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidModulus is returned by NewModular when p < 2.
var ErrInvalidModulus = errors.New("ring: modulus must be >= 2")

// BigInt is the ring of arbitrary-precision integers over *big.Int.
// Operands are never mutated; every result is a freshly allocated *big.Int.
// A nil operand is read as 0, so absent matrix entries are tolerated.
type BigInt struct{}

var _ Unital[*big.Int] = BigInt{}

// Zero returns a new 0.
func (BigInt) Zero() *big.Int { return new(big.Int) }

// One returns a new 1.
func (BigInt) One() *big.Int { return big.NewInt(1) }

// Sum returns a + b.
func (BigInt) Sum(a, b *big.Int) *big.Int {
	return new(big.Int).Add(orZero(a), orZero(b))
}

// Product returns a * b.
func (BigInt) Product(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(orZero(a), orZero(b))
}

// Modular is the ring Z/pZ with canonical representatives in [0, p).
//
// MAIN DESCRIPTION:
//   - Integers modulo p over *big.Int; with p prime this is the field GF(p)
//     used by linear network coding and erasure codes.
//
// Behavior highlights:
//   - Results are always reduced into [0, p), even for negative inputs.
//   - nil operands are read as 0.
//
// Complexity:
//   - Sum O(log p), Product O(log² p) with schoolbook multiplication.
type Modular struct {
	p *big.Int // modulus, >= 2, owned copy
}

var _ Unital[*big.Int] = (*Modular)(nil)

// NewModular returns the ring Z/pZ. The modulus is copied.
func NewModular(p *big.Int) (*Modular, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("NewModular(%v): %w", p, ErrInvalidModulus)
	}

	return &Modular{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of p.
func (m *Modular) Modulus() *big.Int { return new(big.Int).Set(m.p) }

// Zero returns a new 0.
func (m *Modular) Zero() *big.Int { return new(big.Int) }

// One returns a new 1.
func (m *Modular) One() *big.Int { return big.NewInt(1) }

// Sum returns (a + b) mod p.
func (m *Modular) Sum(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(orZero(a), orZero(b))

	return r.Mod(r, m.p) // Mod is Euclidean: result in [0, p)
}

// Product returns (a * b) mod p.
func (m *Modular) Product(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(orZero(a), orZero(b))

	return r.Mod(r, m.p)
}

// Reduce returns x mod p in [0, p).
func (m *Modular) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(orZero(x), m.p)
}

var bigZero = new(big.Int)

// orZero maps nil to a shared read-only zero.
func orZero(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}

	return x
}
