package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "recitekit",
	Short: "MFCC feature extraction, DTW alignment, and HMM decoding",
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a recitekit YAML config file")
	rootCmd.AddCommand(mfccCmd)
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(decodeCmd)
}
