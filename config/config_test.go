package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/leesbaar/readability"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Syllables.PolysyllableThreshold != 3 {
		t.Errorf("expected default polysyllable threshold 3, got %d", cfg.Syllables.PolysyllableThreshold)
	}
	if !cfg.Syllables.CompoundSplitting {
		t.Error("expected compound splitting by default")
	}
	if cfg.Syllables.ExcludeNonLexical {
		t.Error("expected non-lexical tokens to be counted by default")
	}
	if cfg.Frequency.Cutoff != 2000 {
		t.Errorf("expected default cutoff 2000, got %d", cfg.Frequency.Cutoff)
	}
	if cfg.Scoring.Workers != 0 {
		t.Errorf("expected 0 workers (number of CPUs), got %d", cfg.Scoring.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero polysyllable threshold",
			modify:  func(c *Config) { c.Syllables.PolysyllableThreshold = 0 },
			wantErr: true,
		},
		{
			name:    "negative cutoff",
			modify:  func(c *Config) { c.Frequency.Cutoff = -1 },
			wantErr: true,
		},
		{
			name:    "cutoff disabled",
			modify:  func(c *Config) { c.Frequency.Cutoff = 0 },
			wantErr: false,
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Scoring.Workers = -2 },
			wantErr: true,
		},
		{
			name:    "empty formula id",
			modify:  func(c *Config) { c.Readability.Formulas = []string{"clib", ""} },
			wantErr: true,
		},
		{
			name: "custom formula with unknown variable",
			modify: func(c *Config) {
				c.Readability.Custom = []readability.Formula{{
					ID:    "broken",
					Terms: []readability.Term{{Variable: "commas", Coefficient: 1}},
				}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
syllables:
  polysyllable_threshold: 4
  compound_splitting: false
frequency:
  cutoff: 5000
  stop_words_familiar: true
readability:
  formulas:
    - flesch-douma
    - brouwer
  custom:
    - id: brouwer
      name: Brouwer Leesindex
      intercept: 195
      terms:
        - variable: words_per_sentence
          coefficient: -2
        - variable: syllables_per_word
          coefficient: -67
scoring:
  workers: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Syllables.PolysyllableThreshold != 4 {
		t.Errorf("expected threshold 4, got %d", cfg.Syllables.PolysyllableThreshold)
	}
	if cfg.Syllables.CompoundSplitting {
		t.Error("expected compound splitting to be switched off")
	}
	if cfg.Frequency.Cutoff != 5000 {
		t.Errorf("expected cutoff 5000, got %d", cfg.Frequency.Cutoff)
	}
	if !cfg.Frequency.StopWordsFamiliar {
		t.Error("expected stop words to be familiar")
	}
	if len(cfg.Readability.Formulas) != 2 {
		t.Errorf("expected 2 formulas, got %d", len(cfg.Readability.Formulas))
	}
	if len(cfg.Readability.Custom) != 1 {
		t.Fatalf("expected 1 custom formula, got %d", len(cfg.Readability.Custom))
	}
	custom := cfg.Readability.Custom[0]
	if custom.ID != "brouwer" || custom.Intercept != 195 || len(custom.Terms) != 2 {
		t.Errorf("unexpected custom formula: %+v", custom)
	}
	if custom.Terms[1].Variable != readability.SyllablesPerWord {
		t.Errorf("expected syllables_per_word, got %s", custom.Terms[1].Variable)
	}
	if cfg.Scoring.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Scoring.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}

	ids := cfg.FormulaIDs()
	if ids[0] != readability.FleschDouma {
		t.Errorf("expected first formula flesch-douma, got %s", ids[0])
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("syllables: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFromFile(badPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Frequency.Cutoff = 1234
	cfg.Readability.Custom = []readability.Formula{{
		ID:        "wps",
		Terms:     []readability.Term{{Variable: readability.WordsPerSentence, Coefficient: 1}},
		Intercept: 1,
	}}

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Frequency.Cutoff != 1234 {
		t.Errorf("expected cutoff 1234, got %d", loaded.Frequency.Cutoff)
	}
	if len(loaded.Readability.Custom) != 1 || loaded.Readability.Custom[0].ID != "wps" {
		t.Errorf("custom formula not saved: %+v", loaded.Readability.Custom)
	}
}
