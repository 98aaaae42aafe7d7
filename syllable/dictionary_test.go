package syllable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/leesbaar/storage"
)

func TestDictionary_RoundTrip(t *testing.T) {
	source := map[string]int{
		"de":         1,
		"kat":        1,
		"olifant":    3,
		"aardappel":  3,
		"ruïne":      3,
		"beëindigen": 4,
	}

	dict, err := NewDictionary(storage.FromMap(source))
	require.NoError(t, err)
	assert.Equal(t, len(source), dict.Len())

	for word, want := range source {
		got, ok := dict.Lookup(word)
		assert.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}
}

func TestDictionary_Lookup(t *testing.T) {
	dict, err := NewDictionary(storage.FromPairs(
		storage.Pair{Word: "Amsterdam", Value: 3},
	))
	require.NoError(t, err)

	t.Run("case insensitive", func(t *testing.T) {
		n, ok := dict.Lookup("AMSTERDAM")
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("no fuzzy matching", func(t *testing.T) {
		_, ok := dict.Lookup("amsterdamse")
		assert.False(t, ok)
	})

	t.Run("nil dictionary", func(t *testing.T) {
		var d *Dictionary
		_, ok := d.Lookup("kat")
		assert.False(t, ok)
		assert.Equal(t, 0, d.Len())
	})
}

func TestNewDictionary_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []storage.Pair
		wantErr error
	}{
		{"zero count", []storage.Pair{{Word: "kat", Value: 0}}, storage.ErrNonPositiveValue},
		{"conflicting duplicate", []storage.Pair{{Word: "kat", Value: 1}, {Word: "Kat", Value: 2}}, storage.ErrConflictingDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict, err := NewDictionary(storage.FromPairs(tt.pairs...))
			assert.Nil(t, dict)
			assert.ErrorIs(t, err, tt.wantErr)

			var le *storage.DataLoadError
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestLoadCELEX(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dpw.cd")
	content := "1\\aardappel\\234\\1\\aard-ap-pel\n2\\kat\\900\\1\\kat\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	dict, err := LoadCELEX(path)
	require.NoError(t, err)

	n, ok := dict.Lookup("aardappel")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCELEX(filepath.Join(tmpDir, "missing.cd"))
		var le *storage.DataLoadError
		assert.True(t, errors.As(err, &le))
	})
}
