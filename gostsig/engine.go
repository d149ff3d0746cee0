//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gostsig

import (
	"math/big"

	"github.com/markkurossi/gost-crypto/gostcurve"
	"github.com/markkurossi/gost-crypto/streebog"
)

// Signature is a GOST R 34.10-2012 signature pair, plus the raw
// concatenation of the two scalars (the Bytes wire form) reinterpreted
// as a single big-endian integer. Concat exists for diagnostic and identity purposes only;
// it never appears on the wire.
type Signature struct {
	R, S   *big.Int
	Concat *big.Int
}

// Bytes returns the wire form of sig: the little-endian byte
// representation of R followed by the little-endian byte
// representation of S, with no length prefix and no padding beyond
// what big.Int.Bytes produces.
func (sig *Signature) Bytes() []byte {
	return concatLE(sig.R, sig.S)
}

func concatLE(r, s *big.Int) []byte {
	rb := littleEndian(r)
	sb := littleEndian(s)
	return append(rb, sb...)
}

func littleEndian(x *big.Int) []byte {
	be := x.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// hashScalar reduces the little-endian interpretation of the
// message's Streebog-512 digest modulo q, mapping a zero result to 1
// as GOST R 34.10-2012 requires.
func hashScalar(message []byte, q *big.Int) *big.Int {
	digest := streebog.Sum512(message)
	alpha := littleEndianToInt(digest[:])

	e := new(big.Int).Mod(alpha, q)
	if e.Sign() == 0 {
		e.SetInt64(1)
	}
	return e
}

func littleEndianToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// Sign computes a GOST R 34.10-2012 signature of message under the
// private scalar d (0 < d < curve.Q), using generator g of the
// order-q subgroup. rng supplies the per-signature nonce k; sign
// retries internally (unbounded in theory, negligible in practice)
// whenever k, r, or s would come out zero.
func Sign(message []byte, d *big.Int, curve *gostcurve.Curve, g gostcurve.AffinePoint, rng RandSource) (*Signature, error) {
	e := hashScalar(message, curve.Q)

	for {
		k, err := rng.Int(curve.Q)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}

		c, err := curve.Multiply(g, k)
		if err != nil {
			return nil, err
		}

		r := new(big.Int).Mod(c.X, curve.Q)
		if r.Sign() == 0 {
			continue
		}

		// s = (r*d + k*e) mod q
		s := new(big.Int).Mul(r, d)
		ke := new(big.Int).Mul(k, e)
		s.Add(s, ke)
		s.Mod(s, curve.Q)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{
			R:      r,
			S:      s,
			Concat: new(big.Int).SetBytes(concatLE(r, s)),
		}, nil
	}
}

// Verify checks sig against message under generator g and public
// point pub. It returns false (never an error) for out-of-range
// (r, s), for a tamper-sensitive mismatch, and for an internal
// modular-inverse failure, which cannot arise for a prime q since
// e is never zero.
func Verify(sig *Signature, message []byte, curve *gostcurve.Curve, g, pub gostcurve.AffinePoint) bool {
	zero := big.NewInt(0)
	if !(sig.R.Cmp(zero) > 0 && sig.R.Cmp(curve.Q) < 0 &&
		sig.S.Cmp(zero) > 0 && sig.S.Cmp(curve.Q) < 0) {
		return false
	}

	e := hashScalar(message, curve.Q)

	v := new(big.Int).ModInverse(e, curve.Q)
	if v == nil {
		return false
	}

	z1 := new(big.Int).Mul(sig.S, v)
	z1.Mod(z1, curve.Q)

	// big.Int.Mod always yields a result in [0, q), matching the
	// "normalized into [0, q)" requirement on z2 directly.
	z2 := new(big.Int).Neg(sig.R)
	z2.Mul(z2, v)
	z2.Mod(z2, curve.Q)

	p1, err := curve.Multiply(g, z1)
	if err != nil {
		return false
	}
	p2, err := curve.Multiply(pub, z2)
	if err != nil {
		return false
	}
	c, err := curve.Add(p1, p2)
	if err != nil {
		return false
	}

	r := new(big.Int).Mod(c.X, curve.Q)
	return r.Cmp(sig.R) == 0
}
