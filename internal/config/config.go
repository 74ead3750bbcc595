// Package config holds the engine's run configuration: file locations,
// model and walk orders, length bounds, probabilities, and retry
// budgets. Values load from an optional YAML file over defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one generation run.
type Config struct {
	// DataDir holds one <culture>.json vocabulary file per culture.
	DataDir string `yaml:"data_dir"`
	// StatePath is the SQLite file holding the uniqueness ledger and
	// the cycle cache.
	StatePath string `yaml:"state_path"`
	// OutputDir receives the per-culture batch output files.
	OutputDir string `yaml:"output_dir"`

	// Seed fixes the random source; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// ModelOrder indexes the training corpus; WalkOrder is the context
	// length consulted while generating. They are independent: a
	// mismatched pair (e.g. model 2, walk 4) dead-ends nearly every
	// walk and is representable for parity experiments.
	ModelOrder int `yaml:"model_order"`
	WalkOrder  int `yaml:"walk_order"`

	// MinLength and MaxLength bound accepted phonetic words, in
	// symbols before spelling rules apply.
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`

	// VowelStartProb and VowelEndProb are percentages.
	VowelStartProb int `yaml:"vowel_start_prob"`
	VowelEndProb   int `yaml:"vowel_end_prob"`

	// CycleMin and CycleMax bound drawn cycle numbers, inclusive.
	CycleMin int `yaml:"cycle_min"`
	CycleMax int `yaml:"cycle_max"`

	// MaxAttempts bounds both duplicate-collision retries per name and
	// phonotactic-acceptance retries per word.
	MaxAttempts int `yaml:"max_attempts"`

	// PhoneticCultures generate through the transition model instead
	// of a template recipe.
	PhoneticCultures []string `yaml:"phonetic_cultures"`
}

// Default returns the engine's standard configuration.
func Default() *Config {
	return &Config{
		DataDir:          "naming_data",
		StatePath:        "naming_data/state.db",
		OutputDir:        ".",
		ModelOrder:       2,
		WalkOrder:        2,
		MinLength:        4,
		MaxLength:        8,
		VowelStartProb:   40,
		VowelEndProb:     70,
		CycleMin:         1,
		CycleMax:         998,
		MaxAttempts:      100,
		PhoneticCultures: []string{"Mothertree"},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.ModelOrder < 1 || c.WalkOrder < 1 {
		return fmt.Errorf("orders must be >= 1 (model %d, walk %d)", c.ModelOrder, c.WalkOrder)
	}
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return fmt.Errorf("bad length bounds [%d, %d]", c.MinLength, c.MaxLength)
	}
	if c.VowelStartProb < 0 || c.VowelStartProb > 100 || c.VowelEndProb < 0 || c.VowelEndProb > 100 {
		return fmt.Errorf("probabilities are percentages (start %d, end %d)", c.VowelStartProb, c.VowelEndProb)
	}
	if c.CycleMax < c.CycleMin {
		return fmt.Errorf("bad cycle range [%d, %d]", c.CycleMin, c.CycleMax)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	return nil
}

// IsPhonetic reports whether the culture generates via the transition
// model.
func (c *Config) IsPhonetic(culture string) bool {
	for _, p := range c.PhoneticCultures {
		if p == culture {
			return true
		}
	}
	return false
}
