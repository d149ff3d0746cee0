//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gostcurve

import (
	"math/big"
	"testing"
)

// testCurve is the curve from the signature round-trip scenario: a
// GOST R 34.10-2012 test curve with generator g.
func testCurve(t *testing.T) (*Curve, AffinePoint) {
	t.Helper()

	mustInt := func(s string) *big.Int {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("bad integer literal %q", s)
		}
		return n
	}

	curve, err := NewCurve(
		mustInt("7"),
		mustInt("43308876546767276905765904595650931995942111794451039583252968842033849580414"),
		mustInt("57896044618658097711785492504343953926634992332820282019728792003956564821041"),
		mustInt("57896044618658097711785492504343953927082934583725450622380973592137631069619"),
		mustInt("57896044618658097711785492504343953927082934583725450622380973592137631069619"),
	)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}

	g := AffinePoint{
		X: mustInt("2"),
		Y: mustInt("4018974056539037503335449422937059775635739389905545080690979365213431566280"),
	}
	return curve, g
}

func TestAddIdentity(t *testing.T) {
	curve, g := testCurve(t)

	got, err := curve.Add(g, Identity())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.X.Cmp(g.X) != 0 || got.Y.Cmp(g.Y) != 0 {
		t.Errorf("Add(g, Identity) = %v, want %v", got, g)
	}

	got, err = curve.Add(Identity(), g)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.X.Cmp(g.X) != 0 || got.Y.Cmp(g.Y) != 0 {
		t.Errorf("Add(Identity, g) = %v, want %v", got, g)
	}
}

func TestAddNegation(t *testing.T) {
	curve, g := testCurve(t)

	neg := AffinePoint{X: g.X, Y: new(big.Int).Mod(new(big.Int).Neg(g.Y), curve.P)}

	got, err := curve.Add(g, neg)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !got.IsIdentity() {
		t.Errorf("Add(g, -g) = %v, want Identity", got)
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	curve, g := testCurve(t)

	doubled, err := curve.Double(g)
	if err != nil {
		t.Fatalf("Double: %v", err)
	}
	added, err := curve.Add(g, g)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if doubled.X.Cmp(added.X) != 0 || doubled.Y.Cmp(added.Y) != 0 {
		t.Errorf("Double(g) = %v, Add(g, g) = %v, want equal", doubled, added)
	}
}

func TestMultiplyDistributesOverAddition(t *testing.T) {
	curve, g := testCurve(t)

	for _, pair := range [][2]int64{{2, 3}, {5, 7}, {11, 13}, {1, 1}} {
		a, b := big.NewInt(pair[0]), big.NewInt(pair[1])

		pa, err := curve.Multiply(g, a)
		if err != nil {
			t.Fatalf("Multiply(g, %v): %v", a, err)
		}
		pb, err := curve.Multiply(g, b)
		if err != nil {
			t.Fatalf("Multiply(g, %v): %v", b, err)
		}
		sum, err := curve.Add(pa, pb)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}

		want, err := curve.Multiply(g, new(big.Int).Add(a, b))
		if err != nil {
			t.Fatalf("Multiply(g, %v+%v): %v", a, b, err)
		}

		if sum.X.Cmp(want.X) != 0 || sum.Y.Cmp(want.Y) != 0 {
			t.Errorf("Multiply(g,%v)+Multiply(g,%v) = %v, want Multiply(g,%v+%v) = %v",
				a, b, sum, a, b, want)
		}
	}
}

func TestMultiplyByZeroIsIdentity(t *testing.T) {
	curve, g := testCurve(t)

	got, err := curve.Multiply(g, big.NewInt(0))
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	if !got.IsIdentity() {
		t.Errorf("Multiply(g, 0) = %v, want Identity", got)
	}
}

func TestMultiplyReducesModuloQ(t *testing.T) {
	curve, g := testCurve(t)

	k := new(big.Int).Add(curve.Q, big.NewInt(12345))
	kModQ := new(big.Int).Mod(k, curve.Q)

	got, err := curve.Multiply(g, k)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	want, err := curve.Multiply(g, kModQ)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}

	// g has order q, so k*g == (k mod q)*g.
	if got.X.Cmp(want.X) != 0 || got.Y.Cmp(want.Y) != 0 {
		t.Errorf("Multiply(g, k) = %v, Multiply(g, k mod q) = %v, want equal", got, want)
	}
}

func TestNewCurveRejectsIdentityCollision(t *testing.T) {
	_, err := NewCurve(big.NewInt(1), big.NewInt(0), big.NewInt(23), big.NewInt(29), big.NewInt(29))
	if err != ErrIdentityCollision {
		t.Errorf("NewCurve with b=0 returned err=%v, want ErrIdentityCollision", err)
	}
}
