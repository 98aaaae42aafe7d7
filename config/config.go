// Package config provides configuration loading and management for leesbaar.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/leesbaar/readability"
)

// Config represents the complete leesbaar configuration
type Config struct {
	Syllables   SyllableConfig    `yaml:"syllables"`
	Frequency   FrequencyConfig   `yaml:"frequency"`
	Readability ReadabilityConfig `yaml:"readability"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// SyllableConfig configures syllable counting and word classification
type SyllableConfig struct {
	// PolysyllableThreshold is the syllable count from which a word is polysyllabic (default: 3)
	PolysyllableThreshold int `yaml:"polysyllable_threshold"`
	// CompoundSplitting splits unknown words into known dictionary parts before estimating
	CompoundSplitting bool `yaml:"compound_splitting"`
	// ExcludeNonLexical drops tokens without letters instead of counting them as words
	ExcludeNonLexical bool `yaml:"exclude_non_lexical"`
}

// FrequencyConfig configures the familiarity classification
type FrequencyConfig struct {
	// Cutoff is the highest familiar rank (default: 2000, 0 = every listed word is familiar)
	Cutoff int `yaml:"cutoff"`
	// StopWordsFamiliar counts Dutch stop words as familiar whatever their rank
	StopWordsFamiliar bool `yaml:"stop_words_familiar"`
}

// ReadabilityConfig selects and extends the formulas
type ReadabilityConfig struct {
	// Formulas lists the formula IDs to score (empty = all registered)
	Formulas []string `yaml:"formulas"`
	// Custom holds extra formulas registered next to the built-ins
	Custom []readability.Formula `yaml:"custom"`
}

// ScoringConfig configures corpus scoring
type ScoringConfig struct {
	// Workers is the number of documents scored concurrently (0 = number of CPUs)
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Syllables: SyllableConfig{
			PolysyllableThreshold: 3,
			CompoundSplitting:     true,
			ExcludeNonLexical:     false,
		},
		Frequency: FrequencyConfig{
			Cutoff:            2000,
			StopWordsFamiliar: false,
		},
		Readability: ReadabilityConfig{
			Formulas: nil, // All registered
		},
		Scoring: ScoringConfig{
			Workers: 0, // Number of CPUs, resolved by the scorer
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Syllables.PolysyllableThreshold < 1 {
		return fmt.Errorf("syllables.polysyllable_threshold must be at least 1")
	}
	if c.Frequency.Cutoff < 0 {
		return fmt.Errorf("frequency.cutoff must not be negative")
	}
	if c.Scoring.Workers < 0 {
		return fmt.Errorf("scoring.workers must not be negative")
	}
	for i, id := range c.Readability.Formulas {
		if id == "" {
			return fmt.Errorf("readability.formulas[%d] is empty", i)
		}
	}
	for i, f := range c.Readability.Custom {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("readability.custom[%d]: %w", i, err)
		}
	}
	return nil
}

// FormulaIDs returns the configured formula selection.
func (c *Config) FormulaIDs() []readability.FormulaID {
	ids := make([]readability.FormulaID, len(c.Readability.Formulas))
	for i, id := range c.Readability.Formulas {
		ids[i] = readability.FormulaID(id)
	}
	return ids
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := loadInto(config, path); err != nil {
		return nil, err
	}
	return config, nil
}

// loadInto decodes path over config; keys absent from the file keep their
// current values.
func loadInto(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
