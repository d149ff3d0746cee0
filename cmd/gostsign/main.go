//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command gostsign is a command line front end for GOST R
// 34.11-2012 hashing and GOST R 34.10-2012 signing. It hashes
// messages, seals an externally supplied private scalar into an
// encrypted file, and signs and verifies messages against the
// built-in test curve or an operator-supplied public point.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/markkurossi/gost-crypto/gostcurve"
	"github.com/markkurossi/gost-crypto/gostsig"
	"github.com/markkurossi/gost-crypto/internal/hexcodec"
	"github.com/markkurossi/gost-crypto/streebog"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "hash512":
		err = cmdHash(os.Args[2:], streebog.Sum512)
	case "hash256":
		err = cmdHash(os.Args[2:], func(m []byte) []byte {
			sum := streebog.Sum256(m)
			return sum[:]
		})
	case "seal":
		err = cmdSeal(os.Args[2:])
	case "sign":
		err = cmdSign(os.Args[2:])
	case "verify":
		err = cmdVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("gostsign: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: gostsign <command> [arguments]

commands:
  hash512  -msg <hex>
  hash256  -msg <hex>
  seal     -d <hex> -pass <passphrase> -out <file>
  sign     -key <file> -pass <passphrase> -msg <hex>
  verify   -msg <hex> -r <hex> -s <hex> -pub-x <hex> -pub-y <hex>`)
}

func cmdHash(args []string, sum func([]byte) []byte) error {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	msg := fs.String("msg", "", "message in hexadecimal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	message, err := hexcodec.Decode(*msg)
	if err != nil {
		return fmt.Errorf("decoding -msg: %w", err)
	}

	fmt.Printf("%x\n", sum(message))
	return nil
}

func cmdSeal(args []string) error {
	fs := flag.NewFlagSet("seal", flag.ExitOnError)
	d := fs.String("d", "", "private scalar in hexadecimal (supplied by the operator, not generated here)")
	pass := fs.String("pass", "", "passphrase protecting the sealed scalar")
	out := fs.String("out", "", "output file for the sealed envelope")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *d == "" || *pass == "" || *out == "" {
		return fmt.Errorf("seal requires -d, -pass and -out")
	}

	raw, err := hexcodec.Decode(*d)
	if err != nil {
		return fmt.Errorf("decoding -d: %w", err)
	}
	scalar := new(big.Int).SetBytes(raw)

	if err := sealScalar(*out, *pass, scalar); err != nil {
		return err
	}
	fmt.Printf("sealed private scalar into %s\n", *out)
	return nil
}

func cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	key := fs.String("key", "", "sealed private scalar file")
	pass := fs.String("pass", "", "passphrase protecting the sealed scalar")
	msg := fs.String("msg", "", "message in hexadecimal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *key == "" || *pass == "" {
		return fmt.Errorf("sign requires -key and -pass")
	}

	d, err := openScalar(*key, *pass)
	if err != nil {
		return err
	}

	message, err := hexcodec.Decode(*msg)
	if err != nil {
		return fmt.Errorf("decoding -msg: %w", err)
	}

	curve, g := defaultCurve()
	sig, err := gostsig.Sign(message, d, curve, g, gostsig.CryptoRandSource{})
	if err != nil {
		return fmt.Errorf("signing: %w", err)
	}

	fmt.Printf("r=%x\n", sig.R)
	fmt.Printf("s=%x\n", sig.S)
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	msg := fs.String("msg", "", "message in hexadecimal")
	r := fs.String("r", "", "signature r in hexadecimal")
	s := fs.String("s", "", "signature s in hexadecimal")
	pubX := fs.String("pub-x", "", "public point X in hexadecimal")
	pubY := fs.String("pub-y", "", "public point Y in hexadecimal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	message, err := hexcodec.Decode(*msg)
	if err != nil {
		return fmt.Errorf("decoding -msg: %w", err)
	}
	rVal, err := hexInt(*r)
	if err != nil {
		return fmt.Errorf("decoding -r: %w", err)
	}
	sVal, err := hexInt(*s)
	if err != nil {
		return fmt.Errorf("decoding -s: %w", err)
	}
	pubXVal, err := hexInt(*pubX)
	if err != nil {
		return fmt.Errorf("decoding -pub-x: %w", err)
	}
	pubYVal, err := hexInt(*pubY)
	if err != nil {
		return fmt.Errorf("decoding -pub-y: %w", err)
	}

	curve, g := defaultCurve()
	pub := gostcurve.AffinePoint{X: pubXVal, Y: pubYVal}
	sig := &gostsig.Signature{R: rVal, S: sVal}

	if gostsig.Verify(sig, message, curve, g, pub) {
		fmt.Println("ok")
		return nil
	}
	fmt.Println("FAIL")
	os.Exit(1)
	return nil
}

func hexInt(s string) (*big.Int, error) {
	raw, err := hexcodec.Decode(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}
