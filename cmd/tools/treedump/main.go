// treedump loads a frozen-bit mask, builds the Fast SSC decoding tree and
// prints it as JSON. Useful for inspecting which segments of a code are
// recognized as fast-decodable under a given configuration.
package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"

	"github.com/romaroman/go-polar-coding/polar"
)

func main() {
	var maskPath, outPath string
	var binaryMask, generalized bool
	var minSize, af int
	flag.StringVar(&maskPath, "mask", "", "path to the frozen-bit mask file (0/1 text)")
	flag.BoolVar(&binaryMask, "binary", false, "mask file holds little-endian int64 entries")
	flag.BoolVar(&generalized, "generalized", false, "recognize G-REPETITION/RG-PARITY segments")
	flag.IntVar(&minSize, "min", 0, "minimum leaf segment size (0 = built-in minimums)")
	flag.IntVar(&af, "af", 1, "allowed SPC chunks per RG-PARITY segment")
	flag.StringVar(&outPath, "out", "", "output path (default stdout)")
	flag.Parse()

	if maskPath == "" {
		fatalf("missing -mask")
	}
	var mask []uint8
	var err error
	if binaryMask {
		mask, err = polar.LoadMaskBinary(maskPath)
	} else {
		mask, err = polar.LoadMask(maskPath)
	}
	if err != nil {
		fatalf("load %s: %v", maskPath, err)
	}
	n := bits.Len(uint(len(mask))) - 1
	if len(mask) == 0 || len(mask) != 1<<n {
		fatalf("mask length %d is not a power of two", len(mask))
	}

	var dec *polar.Decoder
	if generalized {
		dec, err = polar.NewGeneralizedDecoder(n, mask, true, minSize, af)
	} else {
		dec, err = polar.NewDecoder(n, mask, true, minSize)
	}
	if err != nil {
		fatalf("%v", err)
	}

	out, err := dec.DumpTree().JSON()
	if err != nil {
		fatalf("encode tree: %v", err)
	}
	out = append(out, '\n')
	if outPath == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fatalf("write %s: %v", outPath, err)
	}
}

func fatalf(f string, a ...any) { fmt.Fprintf(os.Stderr, f+"\n", a...); os.Exit(1) }
