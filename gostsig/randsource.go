//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gostsig implements the GOST R 34.10-2012 signature
// algorithm: sign and verify over a prime-order subgroup of a
// gostcurve.Curve, keyed by a Streebog-512 digest of the message.
package gostsig

import (
	"crypto/rand"
	"math/big"
)

// RandSource is the random oracle sign consults for its per-signature
// scalar k. It is an injected capability rather than a package-level
// global so that tests can substitute a deterministic scalar source
// without touching the signing code path.
type RandSource interface {
	// Int returns a value drawn uniformly from [0, max).
	Int(max *big.Int) (*big.Int, error)
}

// CryptoRandSource is the default RandSource, backed by crypto/rand.
type CryptoRandSource struct{}

// Int implements RandSource.
func (CryptoRandSource) Int(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}
