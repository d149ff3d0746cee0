//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package hkdf implements the HKDF-Expand step (RFC 5869) over
// HMAC-SHA-256. It was originally written for TLS 1.3 traffic secret
// expansion; cmd/gostsign reuses it unchanged to expand an operator
// passphrase into the key that seals a stored private scalar.
package hkdf

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Expand fills out with HKDF-Expand(pseudorandomKey, info) output,
// iterating as many HMAC blocks as out requires.
func Expand(pseudorandomKey, info, out []byte) {
	expander := hmac.New(sha256.New, pseudorandomKey)
	counter := []byte{1}

	var prev []byte

	for len(out) > 0 {
		if counter[0] > 1 {
			expander.Reset()
			expander.Write(prev)
		}
		expander.Write(info)
		expander.Write(counter)
		prev = expander.Sum(prev[:0])
		counter[0]++

		n := copy(out, prev)
		out = out[n:]
	}
}
