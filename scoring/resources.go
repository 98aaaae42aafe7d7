package scoring

import (
	"fmt"

	"github.com/c360studio/leesbaar/config"
	"github.com/c360studio/leesbaar/frequency"
	"github.com/c360studio/leesbaar/storage"
	"github.com/c360studio/leesbaar/syllable"
)

// Resources are the lookup tables shared by every document. They are loaded
// once, before scoring starts, and never change afterwards.
type Resources struct {
	Dictionary *syllable.Dictionary
	Frequency  *frequency.Table
}

// LoadResources builds both tables. Either source may be nil, leaving that
// table empty: every word is then estimated, or unfamiliar. Any malformed
// entry fails the whole load.
func LoadResources(cfg *config.Config, syllables, ranks storage.Source) (*Resources, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	res := &Resources{}

	if syllables != nil {
		dict, err := syllable.NewDictionary(syllables)
		if err != nil {
			return nil, fmt.Errorf("syllable dictionary: %w", err)
		}
		res.Dictionary = dict
	}

	if ranks != nil {
		table, err := frequency.NewTable(ranks, FrequencyOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("frequency table: %w", err)
		}
		res.Frequency = table
	}

	return res, nil
}

// FrequencyOptions translates the frequency section of cfg.
func FrequencyOptions(cfg *config.Config) []frequency.Option {
	opts := []frequency.Option{frequency.WithCutoff(cfg.Frequency.Cutoff)}
	if cfg.Frequency.StopWordsFamiliar {
		opts = append(opts, frequency.WithStopWords(frequency.DutchStopWords))
	}
	return opts
}
