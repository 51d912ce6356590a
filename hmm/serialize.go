package hmm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// modelFile is the on-disk shape of a Model: plain probabilities, not log
// space, since that is what a human author of a model file would write.
type modelFile struct {
	N  int         `yaml:"n"`
	K  int         `yaml:"k"`
	Pi []float64   `yaml:"pi"`
	A  [][]float64 `yaml:"a"`
	B  [][]float64 `yaml:"b"`
}

// LoadModel reads a YAML-encoded Model from path. Probabilities of zero or
// less are left at LogZero by the normal Set* rules, so a sparse model file
// need not spell out every impossible entry.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %q: %w", path, err)
	}
	defer f.Close()

	var mf modelFile
	if err := yaml.NewDecoder(f).Decode(&mf); err != nil {
		return nil, fmt.Errorf("parse model %q: %w", path, err)
	}
	if len(mf.Pi) != mf.N || len(mf.A) != mf.N || len(mf.B) != mf.N {
		return nil, fmt.Errorf("model %q: pi/a/b row counts must match n=%d", path, mf.N)
	}

	m := New(mf.N, mf.K)
	for s, p := range mf.Pi {
		m.SetInitial(s, p)
	}
	for i, row := range mf.A {
		for j, p := range row {
			m.SetTransition(i, j, p)
		}
	}
	for s, row := range mf.B {
		for o, p := range row {
			m.SetEmission(s, o, p)
		}
	}
	return m, nil
}
