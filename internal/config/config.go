// Package config loads the tagger-side knobs the CLI threads into the
// constraint engine and decoder.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the constraint-related switches of the tagger model.
type Config struct {
	// Labels is the path to the label vocabulary: one lextag per line,
	// line number = label index.
	Labels string `yaml:"labels"`

	// UPOSConstraints gates the per-token UPOS/lexcat mask. When false,
	// only the transition grammar constrains decoding.
	UPOSConstraints bool `yaml:"upos_constraints"`

	// LemmaConstraints reserves the lemma-conditioned compatibility
	// exceptions. No rule consults lemmas yet; the flag exists so inputs
	// already carry them when one does.
	LemmaConstraints bool `yaml:"lemma_constraints"`

	// IncludeStartEndTransitions enforces the START/END boundary rules
	// during decoding.
	IncludeStartEndTransitions bool `yaml:"include_start_end_transitions"`
}

// Default returns the configuration the original tagger trains with.
func Default() Config {
	return Config{
		UPOSConstraints:            true,
		LemmaConstraints:           false,
		IncludeStartEndTransitions: true,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
