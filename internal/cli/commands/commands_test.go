package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/capitalone/bases"
	"github.com/capitalone/bases/internal/cli/config"
	"github.com/capitalone/bases/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes cmd with cfg and a test logger in its context.
func run(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	ctx := config.NewContext(context.Background(), cfg, testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func withConfig(mutate func(*config.Config)) *config.Config {
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "defaults decimal to hex",
			cfg:  withConfig(nil),
			args: []string{"255"},
			want: "ff\n",
		},
		{
			name: "binary to hex",
			cfg:  withConfig(func(c *config.Config) { c.From, c.To = "2", "16" }),
			args: []string{"10"},
			want: "2\n",
		},
		{
			name: "multi-char digits",
			cfg:  withConfig(func(c *config.Config) { c.From, c.To = "foo,bar", "10" }),
			args: []string{"bar", "foo"},
			want: "2\n",
		},
		{
			name: "separator",
			cfg:  withConfig(func(c *config.Config) { c.To, c.Separator = "62", "~" }),
			args: []string{"62"},
			want: "1~0\n",
		},
		{
			name: "hex flag ignores case",
			cfg:  withConfig(func(c *config.Config) { c.To = "2" }),
			args: []string{"--hex", "0xA"},
			want: "1010\n",
		},
		{
			name: "array",
			cfg:  withConfig(func(c *config.Config) { c.To = "a,b" }),
			args: []string{"--array", "10"},
			want: "b\na\nb\na\n",
		},
		{
			name: "custom base",
			cfg: withConfig(func(c *config.Config) {
				c.To = "dna"
				c.Bases = map[string][]string{"dna": {"A", "C", "G", "T"}}
			}),
			args: []string{"27"},
			want: "CGT\n",
		},
		{
			name:    "wrong digits",
			cfg:     withConfig(func(c *config.Config) { c.From = "2" }),
			args:    []string{"12"},
			wantErr: bases.ErrWrongDigits,
		},
		{
			name:    "upper case hex via base 16",
			cfg:     withConfig(func(c *config.Config) { c.From = "16" }),
			args:    []string{"A"},
			wantErr: bases.ErrWrongDigits,
		},
		{
			name:    "duplicate target",
			cfg:     withConfig(func(c *config.Config) { c.To = "0,1,0" }),
			args:    []string{"2"},
			wantErr: bases.ErrDuplicateDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewConvertCommand(), tt.cfg, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCommandJSON(t *testing.T) {
	cfg := withConfig(func(c *config.Config) {
		c.From, c.To, c.Output = "2", "16", config.OutputJSON
	})

	out, err := run(t, NewConvertCommand(), cfg, "11111111")
	require.NoError(t, err)

	var got convertResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, convertResult{
		Input:  "11111111",
		From:   2,
		To:     16,
		Value:  "255",
		Result: "ff",
		Digits: []string{"f", "f"},
	}, got)
}

func TestConvertCommandRequiresArgs(t *testing.T) {
	_, err := run(t, NewConvertCommand(), withConfig(nil))
	assert.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, NewTableCommand(), withConfig(nil), "255")
	require.NoError(t, err)

	for _, want := range []string{"BASE", "RADIX", "11111111", "377", "255", "ff", "EH"} {
		assert.Contains(t, out, want)
	}
}

func TestTableCommandTargets(t *testing.T) {
	cfg := withConfig(func(c *config.Config) { c.From, c.Output = "2", config.OutputJSON })

	out, err := run(t, NewTableCommand(), cfg, "-T", "10", "-T", "x y", "1010")
	require.NoError(t, err)

	var rows []tableRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []tableRow{
		{Base: "10", Radix: 10, Result: "10"},
		{Base: "x y", Radix: 2, Result: "yxyx"},
	}, rows)
}

func TestTableCommandBadTarget(t *testing.T) {
	_, err := run(t, NewTableCommand(), withConfig(nil), "-T", "nope", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestListCommand(t *testing.T) {
	cfg := withConfig(func(c *config.Config) {
		c.Bases = map[string][]string{"dna": {"A", "C", "G", "T"}}
	})

	out, err := run(t, NewListCommand(), cfg)
	require.NoError(t, err)

	for _, want := range []string{"binary", "b64", "dna", "config", "A C G T"} {
		assert.Contains(t, out, want)
	}
}

func TestListCommandJSON(t *testing.T) {
	cfg := withConfig(func(c *config.Config) { c.Output = config.OutputJSON })

	out, err := run(t, NewListCommand(), cfg)
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "binary", entries[0].Name)
	assert.Equal(t, []string{"0", "1"}, entries[0].Symbols)

	last := entries[len(entries)-1]
	assert.Equal(t, "b64", last.Name)
	assert.Equal(t, 64, last.Radix)
	assert.Equal(t, "/", last.Symbols[63])
}

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{
			name:    "default version",
			version: "0.1.0",
			wantOut: []string{"bases v0.1.0", "base converter"},
		},
		{
			name:    "dev version",
			version: "dev",
			wantOut: []string{"bases vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewVersionCommand(tt.version), withConfig(nil))
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.True(t, strings.Contains(out, want), "output should contain %q, got: %s", want, out)
			}
		})
	}
}
