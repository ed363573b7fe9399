package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello, world"), 0o600))
	return path
}

func TestNewConfig_Compress(t *testing.T) {
	input := writeTempInput(t)

	cfg, err := NewConfig([]string{"compress", input})
	require.NoError(t, err)
	assert.Equal(t, CommandCompress, cfg.Command)
	assert.Equal(t, input, cfg.CLI.Compress.Input)
	assert.Equal(t, input+CompressedSuffix, cfg.CLI.Compress.Output)
	assert.Equal(t, DefaultNumWorkers, cfg.CLI.NumWorkers)
	assert.False(t, cfg.CLI.Compress.Force)
}

func TestNewConfig_Decompress(t *testing.T) {
	input := writeTempInput(t)
	output := filepath.Join(filepath.Dir(input), "restored.txt")

	cfg, err := NewConfig([]string{"--workers", "4", "decompress", "--force", input, output})
	require.NoError(t, err)
	assert.Equal(t, CommandDecompress, cfg.Command)
	assert.Equal(t, output, cfg.CLI.Decompress.Output)
	assert.Equal(t, 4, cfg.CLI.NumWorkers)
	assert.True(t, cfg.CLI.Decompress.Force)
}

func TestNewConfig_Env(t *testing.T) {
	input := writeTempInput(t)
	t.Setenv("HUFFTOOL_WORKERS", "8")

	cfg, err := NewConfig([]string{"stat", input})
	require.NoError(t, err)
	assert.Equal(t, CommandStat, cfg.Command)
	assert.Equal(t, 8, cfg.CLI.NumWorkers)
	assert.Equal(t, 8, cfg.CLI.Stat.Top)
}

func TestNewConfig_Invalid(t *testing.T) {
	input := writeTempInput(t)
	missing := filepath.Join(t.TempDir(), "missing")

	type testRow struct {
		name string
		args []string
	}

	testData := [...]testRow{
		{"no-command", []string{}},
		{"too-many-workers", []string{"--workers", "300", "verify", input}},
		{"zero-workers", []string{"--workers", "0", "verify", input}},
		{"debug-and-quiet", []string{"-d", "-q", "verify", input}},
		{"missing-input", []string{"compress", missing}},
		{"directory-input", []string{"verify", filepath.Dir(input)}},
		{"same-output", []string{"compress", input, input}},
		{"negative-top", []string{"stat", "--top", "-1", input}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cfg, err := NewConfig(row.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDecompressedPath(t *testing.T) {
	assert.Equal(t, "notes.txt", DecompressedPath("notes.txt.huff"))
	assert.Equal(t, "notes.bin"+DecompressedSuffix, DecompressedPath("notes.bin"))
	assert.Equal(t, ".huff"+DecompressedSuffix, DecompressedPath(".huff"))
}
