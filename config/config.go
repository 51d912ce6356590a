// Package config loads the YAML pipeline configuration shared by the
// recitekit CLI commands: sample rate and framing defaults for feature
// extraction, the DTW band width and metric, and the path to a serialized
// HMM model.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feature holds the framing parameters used to slice raw PCM into frames
// before MFCC extraction.
type Feature struct {
	SampleRate float64 `yaml:"sample_rate"`
	FrameLen   int     `yaml:"frame_len"`
	Hop        int     `yaml:"hop"`
	NumCoeffs  int     `yaml:"num_coeffs"`
}

// Alignment holds the DTW parameters used when comparing two feature
// sequences.
type Alignment struct {
	BandWidth int    `yaml:"band_width"`
	Metric    string `yaml:"metric"`
}

// Model points at a serialized HMM model on disk, loaded by the decode
// command.
type Model struct {
	Path string `yaml:"path"`
}

// Root is the top-level shape of a recitekit config file.
type Root struct {
	Feature   Feature   `yaml:"feature"`
	Alignment Alignment `yaml:"alignment"`
	Model     Model     `yaml:"model"`
}

// Default returns the configuration used when no file is supplied, mirroring
// the constants in package feature.
func Default() *Root {
	return &Root{
		Feature: Feature{
			SampleRate: 44100.0,
			FrameLen:   512,
			Hop:        256,
			NumCoeffs:  13,
		},
		Alignment: Alignment{
			BandWidth: 0,
			Metric:    "euclidean",
		},
	}
}

// Load reads and parses a YAML config file at path. An empty path returns
// Default() rather than an error, since every command is usable with no
// config file at all; a non-empty path that cannot be opened is an error.
func Load(path string) (*Root, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
