//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/markkurossi/gost-crypto/crypto/hkdf"
)

const (
	saltSize = 16
	keySize  = chacha20poly1305.KeySize
)

// sealInfo is the HKDF context string binding derived keys to this
// tool and format version, the same role the "info" parameter plays
// in the teacher's own TLS 1.3 key schedule.
var sealInfo = []byte("gostsign envelope v1")

// sealScalar encrypts d at rest under a key derived from passphrase,
// and writes the envelope (salt || nonce || ciphertext) to filename.
// It does not generate d: the caller supplies a private scalar that
// was produced outside this tool, matching the specification's
// exclusion of key generation from the core.
func sealScalar(filename, passphrase string, d *big.Int) error {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("gostsign: generating salt: %w", err)
	}

	key := deriveKey(passphrase, salt)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return fmt.Errorf("gostsign: initializing AEAD: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("gostsign: generating nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, d.Bytes(), nil)

	out := make([]byte, 0, saltSize+len(nonce)+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)

	return os.WriteFile(filename, out, 0o600)
}

// openScalar reverses sealScalar, recovering the private scalar d.
// It fails if passphrase does not match the one sealScalar was
// called with.
func openScalar(filename, passphrase string) (*big.Int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("gostsign: reading envelope: %w", err)
	}

	aead, err := chacha20poly1305.New(make([]byte, keySize))
	if err != nil {
		return nil, fmt.Errorf("gostsign: initializing AEAD: %w", err)
	}
	nonceSize := aead.NonceSize()

	if len(data) < saltSize+nonceSize {
		return nil, fmt.Errorf("gostsign: envelope truncated")
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	key := deriveKey(passphrase, salt)
	aead, err = chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("gostsign: initializing AEAD: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("gostsign: wrong passphrase or corrupted envelope: %w", err)
	}

	return new(big.Int).SetBytes(plaintext), nil
}

// deriveKey expands passphrase, salted and pre-hashed into a
// pseudorandom key, into the AEAD key via the HKDF-Expand step kept
// from the teacher's TLS 1.3 key schedule.
func deriveKey(passphrase string, salt []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(passphrase))
	prk := h.Sum(nil)

	key := make([]byte, keySize)
	hkdf.Expand(prk, sealInfo, key)
	return key
}
