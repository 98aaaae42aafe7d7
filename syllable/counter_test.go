package syllable

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/leesbaar/metrics"
	"github.com/c360studio/leesbaar/storage"
	"github.com/c360studio/leesbaar/token"
)

func newTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	dict, err := NewDictionary(storage.FromMap(map[string]int{
		"de":       1,
		"kat":      1,
		"zit":      1,
		"op":       1,
		"mat":      1,
		"huis":     1,
		"deur":     1,
		"zon":      1,
		"flamingo": 3,
		"olifant":  3,
		"appel":    2,
		"boom":     1,
	}))
	require.NoError(t, err)
	return dict
}

func TestCounter_Count(t *testing.T) {
	c := NewCounter(newTestDictionary(t))

	tests := []struct {
		word       token.Token
		want       int
		wantSource Source
	}{
		{"kat", 1, SourceDictionary},
		{"olifant", 3, SourceDictionary},
		{"huisdeur", 2, SourceCompound},
		{"appelboom", 3, SourceCompound},
		{"zonnebloem", 3, SourceCompound},
		{"flamingo's", 3, SourceCompound},
		{"ruïne", 3, SourceEstimator},
		{"x", 1, SourceEstimator},
	}

	for _, tt := range tests {
		t.Run(string(tt.word), func(t *testing.T) {
			got := c.Count(tt.word)
			assert.Equal(t, tt.want, got.Syllables)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestCounter_CompoundSplittingDisabled(t *testing.T) {
	c := NewCounter(newTestDictionary(t), WithCompoundSplitting(false))

	got := c.Count("huisdeur")
	assert.Equal(t, SourceEstimator, got.Source)
	assert.Equal(t, 2, got.Syllables)
}

func TestCounter_OutOfVocabularyUsesEstimator(t *testing.T) {
	dict, err := NewDictionary(storage.FromMap(map[string]int{"de": 1}))
	require.NoError(t, err)
	c := NewCounter(dict)

	got := c.Count("flamingo's")
	assert.Equal(t, 3, got.Syllables)
	assert.Equal(t, SourceEstimator, got.Source)
}

func TestCounter_NonLexical(t *testing.T) {
	c := NewCounter(nil)

	got := c.Count("1984")
	assert.Equal(t, 1, got.Syllables)
	assert.True(t, got.NonLexical)
	assert.Equal(t, SourceEstimator, got.Source)
}

func TestCounter_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	c := NewCounter(newTestDictionary(t), WithMetrics(m))

	c.Count("kat")
	c.Count("de")
	c.Count("huisdeur")
	c.Count("ruïne")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyllableLookups.WithLabelValues("dictionary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyllableLookups.WithLabelValues("compound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyllableLookups.WithLabelValues("estimator")))
}

func TestCounter_ConcurrentReads(t *testing.T) {
	c := NewCounter(newTestDictionary(t))
	words := []token.Token{"kat", "huisdeur", "flamingo's", "ruïne", "appelboom"}
	want := make([]Count, len(words))
	for i, w := range words {
		want[i] = c.Count(w)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range words {
				assert.Equal(t, want[i], c.Count(w))
			}
		}()
	}
	wg.Wait()
}
