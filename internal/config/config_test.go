package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v2sc/internal/codegen"
	"v2sc/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, codegen.DefaultOptions(), cfg.GeneratorOptions())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "v2sc.toml", `
[Generator]
IndentSize = 2
ClockName = "clk"
ResetName = "rst_n"
Workers = 4

[Frontend]
IncludePaths = ["rtl", "lib"]
IncludeCacheSize = 8

[Frontend.Defines]
WIDTH = "16"

[Log]
Verbosity = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.GeneratorOptions()
	assert.Equal(t, 2, opts.IndentSize)
	assert.Equal(t, "clk", opts.ClockName)
	assert.Equal(t, "rst_n", opts.ResetName)
	assert.Equal(t, codegen.DefaultMaxDepth, opts.MaxDepth)
	assert.Equal(t, 4, opts.Workers)

	lopts := cfg.LoaderOptions()
	assert.Equal(t, []string{"rtl", "lib"}, lopts.IncludePaths)
	assert.Equal(t, map[string]string{"WIDTH": "16"}, lopts.Defines)
	assert.Equal(t, 8, lopts.CacheSize)
	assert.Equal(t, 2, cfg.Log.Verbosity)

	// The loader options are copies.
	lopts.Defines["WIDTH"] = "32"
	assert.Equal(t, "16", cfg.Frontend.Defines["WIDTH"])
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown key", "[Generator]\nIndent = 2\n", "Indent"},
		{"unknown section", "[Output]\nPath = \"x\"\n", "Output"},
		{"negative indent", "[Generator]\nIndentSize = -1\n", "schema validation failed"},
		{"bad clock name", "[Generator]\nClockName = \"1clk\"\n", "schema validation failed"},
		{"zero workers", "[Generator]\nWorkers = 0\n", "schema validation failed"},
		{"shared signal", "[Generator]\nClockName = \"RSTX\"\n", "clock and reset"},
		{"wrong type", "[Generator]\nIndentSize = \"four\"\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "v2sc.toml", tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var le *errors.LoadError
			require.True(t, stderrors.As(err, &le))
			assert.Equal(t, errors.ErrorInvalidConfig, le.Code)
			assert.Equal(t, path, le.Pos.Filename)
			assert.Contains(t, le.Error(), tt.message)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	assert.Equal(t, "", Find(""))
	assert.Equal(t, "given.toml", Find("given.toml"))

	homeConfig := writeConfig(t, home, filepath.Join(".config", "v2sc", "config.toml"), "")
	assert.Equal(t, homeConfig, Find(""))

	writeConfig(t, work, ".v2sc.toml", "")
	assert.Equal(t, ".v2sc.toml", Find(""))

	writeConfig(t, work, "v2sc.toml", "")
	assert.Equal(t, "v2sc.toml", Find(""))
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24), and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
