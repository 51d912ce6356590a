package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/recitekit/config"
	"github.com/ieee0824/recitekit/feature"
)

var mfccCmd = &cobra.Command{
	Use:   "mfcc <samples-file>",
	Short: "Extract MFCC feature frames from a raw PCM sample file",
	Long: `Extract MFCC feature frames from a raw PCM sample file.

The input file holds one real-valued sample per line. Frames are sliced
according to the frame_len/hop settings in the config file (see -c), or
the package defaults if none is given.

Example:
  recitekit mfcc samples.txt
  recitekit -c pipeline.yaml mfcc samples.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		samples, err := readSamples(args[0])
		if err != nil {
			return err
		}

		frames := feature.SlideFrames(samples, cfg.Feature.FrameLen, cfg.Feature.Hop)
		for i, frame := range frames {
			coeffs := feature.ExtractMFCCRate(frame, cfg.Feature.FrameLen, cfg.Feature.NumCoeffs, cfg.Feature.SampleRate)
			pitch := feature.CalculatePitch(frame, cfg.Feature.SampleRate, feature.DefaultMinPitch, feature.DefaultMaxPitch)
			fmt.Printf("frame %d: mfcc=%v pitch=%.2f\n", i, coeffs, pitch)
		}
		return nil
	},
}
