package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "output", "", "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"in.fa", "--bool", "-o=x", "--output", "json", "-", "--", "--not-a-flag"})
	assert.Equal(t, []string{"--bool", "-o=x", "--output", "json"}, flagArgs)
	assert.Equal(t, []string{"in.fa", "-", "--not-a-flag"}, posArgs)
}

func TestLookupFlag(t *testing.T) {
	v, ok := LookupFlag([]string{"-S", "ACGT", "--config", "a.toml"}, "config")
	assert.True(t, ok)
	assert.Equal(t, "a.toml", v)

	v, ok = LookupFlag([]string{"-config=b.toml"}, "config")
	assert.True(t, ok)
	assert.Equal(t, "b.toml", v)

	_, ok = LookupFlag([]string{"--", "--config", "c.toml"}, "config")
	assert.False(t, ok)

	_, ok = LookupFlag([]string{"--quiet"}, "config")
	assert.False(t, ok)
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.fa", "a.fa"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644))
	}
	got, err := ExpandPositionals([]string{"-", filepath.Join(dir, "*.fa")})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa")}, got)

	_, err = ExpandPositionals([]string{filepath.Join(dir, "*.gz")})
	assert.Error(t, err)
}
