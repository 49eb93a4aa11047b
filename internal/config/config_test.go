package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dnarle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultBoundsDecoding(t *testing.T) {
	assert.Equal(t, 1<<30, Default().Decode.MaxLength)

	f, err := Load(writeConfig(t, "quiet = true\n"))
	require.NoError(t, err)
	assert.Equal(t, 1<<30, f.Decode.MaxLength)

	f, err = Load(writeConfig(t, "[decode]\nmax_length = 0\n"))
	require.NoError(t, err)
	assert.Zero(t, f.Decode.MaxLength)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output = "json"
quiet = true
no_output_exit_code = 0
threads = 2

[encode]
verify = true

[decode]
max_length = 500
`)
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", f.Output)
	assert.True(t, f.Quiet)
	assert.True(t, f.Encode.Verify)
	assert.Equal(t, 500, f.Decode.MaxLength)
	assert.Equal(t, 2, f.Threads)
	require.NotNil(t, f.NoOutputExitCode)
	assert.Equal(t, 0, *f.NoOutputExitCode)
}

func TestLoadKeepsDefaults(t *testing.T) {
	f, err := Load(writeConfig(t, `pretty = true`))
	require.NoError(t, err)
	assert.Equal(t, "text", f.Output)
	assert.True(t, f.Pretty)
	assert.Equal(t, 1, *f.NoOutputExitCode)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "outptu = \"json\"\n[decode]\nmax_len = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: decode.max_len, outptu")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"[decode]\nmax_length = -1\n": "decode.max_length fails min=0",
		"threads = -1\n":               "threads fails min=0",
		"output = \"xml\"\n":           "output fails oneof",
		"color = \"rainbow\"\n":        "color fails oneof",
		"no_output_exit_code = 300\n":  "no_output_exit_code fails max=255",
	}
	for doc, want := range cases {
		_, err := Load(writeConfig(t, doc))
		require.Error(t, err, doc)
		assert.Contains(t, err.Error(), want, doc)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, "output = "))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	f, path, err := Resolve("", func(string) string { return "" })
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default().Output, f.Output)

	cfg := writeConfig(t, `output = "yaml"`)
	f, path, err = Resolve("", func(k string) string {
		if k == EnvVar {
			return cfg
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, cfg, path)
	assert.Equal(t, "yaml", f.Output)

	_, _, err = Resolve(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}
