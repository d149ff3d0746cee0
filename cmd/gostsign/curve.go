//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"math/big"

	"github.com/markkurossi/gost-crypto/gostcurve"
)

// defaultCurve is the GOST R 34.10-2012 test curve and generator
// that the sign and verify subcommands always use; the command line
// has no option for other curve parameters. Its values are the ones the specification's sign/
// verify round-trip scenario pins.
func defaultCurve() (*gostcurve.Curve, gostcurve.AffinePoint) {
	mustInt := func(s string) *big.Int {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			panic("gostsign: invalid built-in curve constant " + s)
		}
		return n
	}

	curve, err := gostcurve.NewCurve(
		mustInt("7"),
		mustInt("43308876546767276905765904595650931995942111794451039583252968842033849580414"),
		mustInt("57896044618658097711785492504343953926634992332820282019728792003956564821041"),
		mustInt("57896044618658097711785492504343953927082934583725450622380973592137631069619"),
		mustInt("57896044618658097711785492504343953927082934583725450622380973592137631069619"),
	)
	if err != nil {
		panic("gostsign: built-in curve failed validation: " + err.Error())
	}

	g := gostcurve.AffinePoint{
		X: mustInt("2"),
		Y: mustInt("4018974056539037503335449422937059775635739389905545080690979365213431566280"),
	}
	return curve, g
}
