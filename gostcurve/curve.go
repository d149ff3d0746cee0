//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gostcurve implements big-integer short-Weierstrass point
// arithmetic over a prime field, generalized from the P-256-specific
// curveAdd/curveDouble pair the teacher keeps in its kernel package
// into a type parameterized by an arbitrary curve descriptor.
package gostcurve

import (
	"errors"
	"math/big"
)

// ErrIdentityCollision is returned by NewCurve when the curve's
// parameters would make the point-at-infinity sentinel (0, 0) a
// valid affine point on the curve itself, which the AffinePoint
// encoding cannot disambiguate.
var ErrIdentityCollision = errors.New("gostcurve: (0, 0) lies on the curve; identity sentinel is ambiguous")

// Curve is the parameter bundle (a, b, p, m, q) for a short
// Weierstrass curve y^2 = x^3 + a*x + b (mod p), where m is the
// curve order and q is the prime order of the subgroup used for
// signatures.
type Curve struct {
	A, B *big.Int
	P    *big.Int
	M    *big.Int
	Q    *big.Int
}

// NewCurve builds a Curve from its parameters. It asserts the design
// invariant that (0, 0) is not itself an affine point on the curve,
// since (0, 0) is reserved here to represent the point at infinity.
// Curve-parameter validation beyond that (primality of p and q, q | m,
// 0 <= a, b < p) is out of scope: callers are expected to supply
// parameters from a trusted source.
func NewCurve(a, b, p, m, q *big.Int) (*Curve, error) {
	// b mod p == 0 means (0,0) satisfies y^2 = x^3 + a*x + b at x=y=0.
	if new(big.Int).Mod(b, p).Sign() == 0 {
		return nil, ErrIdentityCollision
	}
	return &Curve{A: a, B: b, P: p, M: m, Q: q}, nil
}

// mod normalizes x into [0, p).
func (c *Curve) mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, c.P)
}

// modQ normalizes x into [0, q).
func (c *Curve) modQ(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, c.Q)
}

// inverse computes the modular inverse of x modulo p, failing when x
// is not coprime to p (including x == 0).
func (c *Curve) inverse(x *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(x, c.P)
	if inv == nil {
		return nil, errNotInvertible(x, c.P)
	}
	return inv, nil
}

func errNotInvertible(x, m *big.Int) error {
	return &notInvertibleError{x: new(big.Int).Set(x), m: new(big.Int).Set(m)}
}

type notInvertibleError struct {
	x, m *big.Int
}

func (e *notInvertibleError) Error() string {
	return "gostcurve: " + e.x.String() + " has no inverse modulo " + e.m.String()
}
