//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gostsig

import (
	"math/big"
	"testing"

	"github.com/markkurossi/gost-crypto/gostcurve"
)

var msg63 = []byte{
	0x32, 0x31, 0x30, 0x39, 0x38, 0x37, 0x36, 0x35, 0x34, 0x33, 0x32, 0x31, 0x30, 0x39, 0x38,
	0x37, 0x36, 0x35, 0x34, 0x33, 0x32, 0x31, 0x30, 0x39, 0x38, 0x37, 0x36, 0x35, 0x34, 0x33,
	0x32, 0x31, 0x30, 0x39, 0x38, 0x37, 0x36, 0x35, 0x34, 0x33, 0x32, 0x31, 0x30, 0x39, 0x38,
	0x37, 0x36, 0x35, 0x34, 0x33, 0x32, 0x31, 0x30, 0x39, 0x38, 0x37, 0x36, 0x35, 0x34, 0x33,
	0x32, 0x31, 0x30,
}

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return n
}

// s3Fixture builds the curve, generator, private scalar, and public
// point from the scenario S3 sign/verify round-trip in the
// specification this engine implements.
func s3Fixture(t *testing.T) (*gostcurve.Curve, gostcurve.AffinePoint, *big.Int, gostcurve.AffinePoint) {
	t.Helper()

	curve, err := gostcurve.NewCurve(
		mustInt(t, "7"),
		mustInt(t, "43308876546767276905765904595650931995942111794451039583252968842033849580414"),
		mustInt(t, "57896044618658097711785492504343953926634992332820282019728792003956564821041"),
		mustInt(t, "57896044618658097711785492504343953927082934583725450622380973592137631069619"),
		mustInt(t, "57896044618658097711785492504343953927082934583725450622380973592137631069619"),
	)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}

	g := gostcurve.AffinePoint{
		X: mustInt(t, "2"),
		Y: mustInt(t, "4018974056539037503335449422937059775635739389905545080690979365213431566280"),
	}
	d := mustInt(t, "55441196065363246126355624130324183196576709222340016572108097750006097525544")
	pub := gostcurve.AffinePoint{
		X: mustInt(t, "57520216126176808443631405023338071176630104906313632182896741342206604859403"),
		Y: mustInt(t, "17614944419213781543809391949654080031942662045363639260709847859438286763994"),
	}

	return curve, g, d, pub
}

func TestSignVerifyRoundTrip(t *testing.T) {
	curve, g, d, pub := s3Fixture(t)

	sig, err := Sign(msg63, d, curve, g, CryptoRandSource{})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !Verify(sig, msg63, curve, g, pub) {
		t.Errorf("Verify(Sign(message, d, curve, g), message, curve, g, d*g) = false, want true")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	curve, g, d, pub := s3Fixture(t)

	sig, err := Sign(msg63, d, curve, g, CryptoRandSource{})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := make([]byte, len(msg63))
	copy(tampered, msg63)
	tampered[0] ^= 0x01

	if Verify(sig, tampered, curve, g, pub) {
		t.Errorf("Verify accepted a signature over a tampered message")
	}
}

func TestVerifyRejectsTamperedR(t *testing.T) {
	curve, g, d, pub := s3Fixture(t)

	sig, err := Sign(msg63, d, curve, g, CryptoRandSource{})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := &Signature{
		R: new(big.Int).Xor(sig.R, big.NewInt(1)),
		S: sig.S,
	}

	if Verify(tampered, msg63, curve, g, pub) {
		t.Errorf("Verify accepted a signature with r XOR 1")
	}
}

func TestVerifyRejectsOutOfRangeRS(t *testing.T) {
	curve, g, _, pub := s3Fixture(t)

	sig := &Signature{R: big.NewInt(0), S: big.NewInt(1)}
	if Verify(sig, msg63, curve, g, pub) {
		t.Errorf("Verify accepted r == 0")
	}

	sig = &Signature{R: big.NewInt(1), S: new(big.Int).Set(curve.Q)}
	if Verify(sig, msg63, curve, g, pub) {
		t.Errorf("Verify accepted s == q")
	}
}

func TestSignRetriesOnZeroK(t *testing.T) {
	curve, g, d, pub := s3Fixture(t)

	rng := &fixedRandSource{values: []*big.Int{
		big.NewInt(0), // rejected: k == 0
		big.NewInt(424242),
	}}

	sig, err := Sign(msg63, d, curve, g, rng)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(sig, msg63, curve, g, pub) {
		t.Errorf("signature produced after a retried k did not verify")
	}
}

func TestSignatureBytesWireForm(t *testing.T) {
	sig := &Signature{R: big.NewInt(0x0201), S: big.NewInt(0x0403)}
	got := sig.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %x, want %x", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %x, want %x", got, want)
		}
	}
}
