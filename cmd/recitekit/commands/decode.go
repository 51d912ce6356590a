package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/recitekit/config"
	"github.com/ieee0824/recitekit/hmm"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <observations-file>",
	Short: "Viterbi-decode an observation sequence against an HMM model",
	Long: `Viterbi-decode an observation sequence against an HMM model.

The model path comes from the config file's model.path setting (see -c).
The observations file holds one integer symbol index per line.

Example:
  recitekit -c pipeline.yaml decode observations.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Model.Path == "" {
			return fmt.Errorf("no model path configured, set model.path in the config file")
		}

		model, err := hmm.LoadModel(cfg.Model.Path)
		if err != nil {
			return err
		}

		obs, err := readSymbols(args[0])
		if err != nil {
			return err
		}

		path := model.Viterbi(obs)
		logLikelihood := model.Forward(obs)

		fmt.Printf("path: %v\n", path)
		fmt.Printf("log-likelihood: %v\n", logLikelihood)
		return nil
	},
}
