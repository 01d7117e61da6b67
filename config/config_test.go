package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFile_MissingFileReturnsDefaults(t *testing.T) {
	c, err := FromFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
	require.Equal(t, 4, c.Input.Workers)
	require.True(t, c.Output.Console.Enabled)
}

func TestFromFile_MalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("input = [this is not valid toml"), 0o644))

	c, err := FromFile(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConfigNotFound)
	// Defaults are still returned so the caller can proceed.
	require.Equal(t, 4, c.Input.Workers)
}

func TestFromFile_DecodesSinkOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akari.toml")
	contents := `
[input]
url = "https://example.test/happenings"
workers = 8

[output.broker]
enabled = true
exchange_name = "custom-exchange"
include = ["ndel", "rochange"]

[output.file]
enabled = true
path = "/var/log/akari.jsonl"
maxfiles = 10
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.test/happenings", c.Input.URL)
	require.Equal(t, 8, c.Input.Workers)
	require.True(t, c.Output.Broker.Enabled)
	require.Equal(t, "custom-exchange", c.Output.Broker.ExchangeName)
	require.Equal(t, []string{"ndel", "rochange"}, c.Output.Broker.Include)
	require.Equal(t, "/var/log/akari.jsonl", c.Output.File.Path)
	require.Equal(t, 10, c.Output.File.MaxFiles)
	// A sink-specific default (threshold) survives even though the file
	// only set maxfiles.
	require.Equal(t, int64(104857600), c.Output.File.Threshold)
}

func TestSinkFilter_Allows(t *testing.T) {
	tests := []struct {
		name     string
		filter   SinkFilter
		category string
		want     bool
	}{
		{"empty filter allows everything", SinkFilter{}, "ndel", true},
		{"include set excludes non-members", SinkFilter{Include: []string{"ndel"}}, "move", false},
		{"include set allows members", SinkFilter{Include: []string{"ndel"}}, "ndel", true},
		{"exclude wins over include", SinkFilter{Include: []string{"ndel"}, Exclude: []string{"ndel"}}, "ndel", false},
		{"exclude alone blocks category", SinkFilter{Exclude: []string{"skipped"}}, "skipped", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.filter.Allows(tt.category))
		})
	}
}
