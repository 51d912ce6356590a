package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/recitekit/config"
	"github.com/ieee0824/recitekit/dtw"
)

var alignCmd = &cobra.Command{
	Use:   "align <reference-file> <candidate-file>",
	Short: "DTW-align two feature sequence files and print the distance and path",
	Long: `DTW-align two feature sequence files.

Each input file holds one comma-separated feature vector per line. The
band width and distance metric come from the config file's alignment
section (see -c), defaulting to an unconstrained band and Euclidean
distance.

Example:
  recitekit align reference.csv candidate.csv`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		reference, err := readVectors(args[0])
		if err != nil {
			return err
		}
		candidate, err := readVectors(args[1])
		if err != nil {
			return err
		}

		metric, err := parseMetric(cfg.Alignment.Metric)
		if err != nil {
			return err
		}

		result := dtw.Compute(reference, candidate, dtw.Options{
			BandWidth:  cfg.Alignment.BandWidth,
			Metric:     metric,
			ReturnPath: true,
		})

		fmt.Printf("distance: %v\n", result.Distance)
		fmt.Printf("normalized distance: %v\n", result.NormalizedDistance)
		fmt.Printf("path: %v\n", result.Path)
		return nil
	},
}

func parseMetric(name string) (dtw.Metric, error) {
	switch name {
	case "", "euclidean":
		return dtw.Euclidean, nil
	case "manhattan":
		return dtw.Manhattan, nil
	case "cosine":
		return dtw.Cosine, nil
	default:
		return dtw.Euclidean, fmt.Errorf("unknown alignment metric %q", name)
	}
}
