//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gostcurve

import "math/big"

// AffinePoint is a pair (x, y) of big integers on a Curve. The point
// (0, 0) is reserved as the sentinel for the point at infinity: see
// NewCurve for the construction-time check that keeps this
// unambiguous.
type AffinePoint struct {
	X, Y *big.Int
}

// Identity returns the point-at-infinity sentinel.
func Identity() AffinePoint {
	return AffinePoint{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsIdentity reports whether p is the point-at-infinity sentinel.
func (p AffinePoint) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Add returns l + r on the curve c. It handles the identity element,
// point negation (l + (-l) = identity), and point doubling (l == r)
// as special cases before falling back to the general addition
// formula; this mirrors the case analysis the teacher's curveAdd
// performs for P-256, generalized to an arbitrary Curve.
func (c *Curve) Add(l, r AffinePoint) (AffinePoint, error) {
	if l.IsIdentity() {
		return r, nil
	}
	if r.IsIdentity() {
		return l, nil
	}

	negRY := c.mod(new(big.Int).Neg(r.Y))
	if l.X.Cmp(r.X) == 0 && l.Y.Cmp(negRY) == 0 {
		return Identity(), nil
	}
	if l.X.Cmp(r.X) == 0 && l.Y.Cmp(r.Y) == 0 {
		return c.Double(l)
	}

	// lambda = (r.y - l.y) / (r.x - l.x) mod p
	num := c.mod(new(big.Int).Sub(r.Y, l.Y))
	den := c.mod(new(big.Int).Sub(r.X, l.X))
	denInv, err := c.inverse(den)
	if err != nil {
		return AffinePoint{}, err
	}
	lambda := c.mod(new(big.Int).Mul(num, denInv))

	// x' = lambda^2 - l.x - r.x mod p
	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, l.X)
	x.Sub(x, r.X)
	x = c.mod(x)

	// y' = lambda*(l.x - x') - l.y mod p
	y := new(big.Int).Sub(l.X, x)
	y.Mul(lambda, y)
	y.Sub(y, l.Y)
	y = c.mod(y)

	return AffinePoint{X: x, Y: y}, nil
}

// Double returns l + l on the curve c.
func (c *Curve) Double(l AffinePoint) (AffinePoint, error) {
	if l.IsIdentity() {
		return Identity(), nil
	}
	if l.Y.Sign() == 0 {
		return Identity(), nil
	}

	// lambda = (3*l.x^2 + a) / (2*l.y) mod p
	num := new(big.Int).Mul(l.X, l.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	num = c.mod(num)

	den := c.mod(new(big.Int).Mul(l.Y, big.NewInt(2)))
	denInv, err := c.inverse(den)
	if err != nil {
		return AffinePoint{}, err
	}
	lambda := c.mod(new(big.Int).Mul(num, denInv))

	// x' = lambda^2 - 2*l.x mod p
	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, l.X)
	x.Sub(x, l.X)
	x = c.mod(x)

	// y' = lambda*(l.x - x') - l.y mod p
	y := new(big.Int).Sub(l.X, x)
	y.Mul(lambda, y)
	y.Sub(y, l.Y)
	y = c.mod(y)

	return AffinePoint{X: x, Y: y}, nil
}

// Multiply computes n*p on the curve c using the double-and-add
// method, scanning n from its least-significant bit upward.
func (c *Curve) Multiply(p AffinePoint, n *big.Int) (AffinePoint, error) {
	result := Identity()
	addend := p
	k := c.modQ(n)

	zero := big.NewInt(0)
	for k.Cmp(zero) > 0 {
		if k.Bit(0) == 1 {
			var err error
			result, err = c.Add(result, addend)
			if err != nil {
				return AffinePoint{}, err
			}
		}

		var err error
		addend, err = c.Double(addend)
		if err != nil {
			return AffinePoint{}, err
		}

		k.Rsh(k, 1)
	}

	return result, nil
}
