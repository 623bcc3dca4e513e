// Command qrtool encodes a string to a QR code PNG and demonstrates the
// Reed-Solomon decoder by optionally injecting synthetic symbol errors and
// reporting whether they were recovered.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/qrcodec/rs256/gf256"
	"github.com/qrcodec/rs256/qrcode"
)

func main() {
	var (
		out     = flag.String("out", "qr.png", "output PNG path")
		scale   = flag.Int("scale", 10, "pixels per module")
		level   = flag.String("level", "M", "error correction level: L, M, Q or H")
		injectN = flag.Int("inject-errors", 0, "number of synthetic symbol errors to inject before decoding")
		seed    = flag.Int64("seed", 1, "PRNG seed for error injection")
		debug   = flag.Bool("debug", false, "print the codeword, syndrome, sigma and omega polynomials during decode")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <content>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	content := flag.Arg(0)

	eccLevel, err := parseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	qr, err := qrcode.NewQRCode(content, eccLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating QR code:", err)
		os.Exit(1)
	}

	file, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating output file:", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := qr.WritePNG(file, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "error writing PNG:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (version %d, %d codewords, %d parity)\n", *out, qr.Version, len(qr.Codewords), qr.ECCount)

	if *injectN > 0 {
		rng := rand.New(rand.NewSource(*seed))
		injected := make(map[int]bool, *injectN)
		for len(injected) < *injectN && len(injected) < len(qr.Codewords) {
			injected[rng.Intn(len(qr.Codewords))] = true
		}
		for pos := range injected {
			qr.Codewords[pos] ^= byte(1 + rng.Intn(255))
		}
		fmt.Printf("injected %d symbol error(s)\n", len(injected))
	}

	if *injectN > 0 || *debug {
		if *debug {
			fmt.Println("codeword:", gf256.NewPolynomial(gf256.QRField(), qr.Codewords).String())
		}

		corrected, debugInfo, err := qr.CorrectCodewordsWithDebug()
		if *debug {
			fmt.Println("syndrome:", debugInfo.Syndrome.String())
			fmt.Println("sigma:   ", debugInfo.Sigma.String())
			fmt.Println("omega:   ", debugInfo.Omega.String())
		}
		if err != nil {
			fmt.Println("decode failed:", err)
			os.Exit(1)
		}
		fmt.Printf("decoded successfully, corrected %d symbol(s)\n", corrected)
	}
}

func parseLevel(s string) (int, error) {
	switch s {
	case "L":
		return qrcode.LevelL, nil
	case "M":
		return qrcode.LevelM, nil
	case "Q":
		return qrcode.LevelQ, nil
	case "H":
		return qrcode.LevelH, nil
	default:
		return 0, fmt.Errorf("unknown level %q (want L, M, Q or H)", s)
	}
}
