package basespec

import (
	"testing"

	"github.com/capitalone/bases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r, err := NewResolver(map[string][]string{
		"dna": {"A", "C", "G", "T"},
		"hex": {"x", "y"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		spec    string
		symbols []string
		radix   int
	}{
		{name: "integer", spec: "2", symbols: []string{"0", "1"}},
		{name: "integer with spaces", spec: " 3 ", symbols: []string{"0", "1", "2"}},
		{name: "wide integer", spec: "62", radix: 62},
		{name: "preset", spec: "b64", radix: 64},
		{name: "preset case", spec: "BINARY", symbols: []string{"0", "1"}},
		{name: "custom", spec: "dna", symbols: []string{"A", "C", "G", "T"}},
		{name: "custom shadows preset", spec: "hex", symbols: []string{"x", "y"}},
		{name: "comma list", spec: "foo, bar", symbols: []string{"foo", "bar"}},
		{name: "space list", spec: "💚 💙", symbols: []string{"💚", "💙"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := r.Parse(tt.spec)
			require.NoError(t, err)
			if tt.symbols != nil {
				assert.Equal(t, tt.symbols, b.Symbols())
			}
			if tt.radix != 0 {
				assert.Equal(t, tt.radix, b.Radix())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	r, err := NewResolver(nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		spec string
		err  error
	}{
		{name: "empty", spec: "  ", err: ErrUnknownBase},
		{name: "unknown name", spec: "nope", err: ErrUnknownBase},
		{name: "zero", spec: "0", err: bases.ErrEmptyBase},
		{name: "duplicate list", spec: "a,b,a", err: bases.ErrDuplicateDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Parse(tt.spec)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewResolverRejectsDuplicates(t *testing.T) {
	_, err := NewResolver(map[string][]string{"bad": {"0", "1", "0"}})
	assert.ErrorIs(t, err, bases.ErrDuplicateDigits)
}

func TestNames(t *testing.T) {
	r, err := NewResolver(map[string][]string{
		"zz":  {"z", "Z"},
		"dna": {"A", "C", "G", "T"},
	})
	require.NoError(t, err)

	names := r.Names()
	require.Len(t, names, len(canonical)+2)

	assert.Equal(t, "binary", names[0].Name)
	assert.False(t, names[0].Custom)
	assert.Equal(t, "dna", names[len(names)-2].Name)
	assert.Equal(t, "zz", names[len(names)-1].Name)
	assert.True(t, names[len(names)-1].Custom)
}
