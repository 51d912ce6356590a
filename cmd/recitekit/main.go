// Command recitekit extracts MFCC features from PCM audio, aligns feature
// sequences with dynamic time warping, and decodes discrete observation
// sequences against an HMM model.
//
// Usage:
//
//	recitekit [flags] <command> [args]
//
// Commands:
//
//	mfcc    - extract MFCC feature frames from a raw PCM file
//	align   - DTW-align two feature sequence files
//	decode  - Viterbi-decode an observation sequence against an HMM model
package main

import (
	"fmt"
	"os"

	"github.com/ieee0824/recitekit/cmd/recitekit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
