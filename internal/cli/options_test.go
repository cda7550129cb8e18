// internal/cli/options_test.go
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse runs the root command with a stub run and returns the options it saw.
func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	o := Defaults()
	ran := false
	cmd := NewRootCommand(&o, func(*cobra.Command) error { ran = true; return nil })
	cmd.SetArgs(args)
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})
	err := cmd.Execute()
	if err == nil && !ran {
		t.Fatalf("run not called for %v", args)
	}
	return o, err
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := parse(t, args...)
	require.NoError(t, err)
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "g.asqg", "data/reads.gmap")
	assert.Equal(t, "g.asqg", o.GraphFile)
	assert.Equal(t, 250, o.MaxDistance)
	assert.Equal(t, 10000, o.MaxSteps)
	assert.Equal(t, 1, o.Threads)
	assert.Equal(t, "fasta", o.Output)
	assert.Equal(t, 50000, o.ProgressEvery)
	assert.Equal(t, "reads.connect.fa", o.OutFile)
}

func TestShortFlags(t *testing.T) {
	o := mustParse(t, "-d", "90", "-t", "4", "-o", "-", "-vv", "g", "m")
	assert.Equal(t, 90, o.MaxDistance)
	assert.Equal(t, 4, o.Threads)
	assert.Equal(t, "-", o.OutFile)
	assert.Equal(t, 2, o.Verbose)

	o = mustParse(t, "-m", "33", "g", "m")
	assert.Equal(t, 33, o.MaxDistance)
}

func TestJSONLDefaultOutFile(t *testing.T) {
	o := mustParse(t, "--output", "jsonl", "g", "x/pairs.gmap.gz")
	assert.Equal(t, "pairs.connect.jsonl", o.OutFile)
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing args":      {"g.asqg"},
		"negative distance": {"-d", "-1", "g", "m"},
		"zero steps":        {"--max-steps", "0", "g", "m"},
		"negative threads":  {"-t", "-2", "g", "m"},
		"bad output":        {"--output", "bam", "g", "m"},
		"unknown flag":      {"--frobnicate", "g", "m"},
		"bad int":           {"-d", "far", "g", "m"},
		"missing config":    {"--config", "/nonexistent/pairwalk.yaml", "g", "m"},
	}
	for name, args := range cases {
		_, err := parse(t, args...)
		require.Error(t, err, name)
		var ue *UsageError
		assert.True(t, errors.As(err, &ue), "%s: %v is not a usage error", name, err)
	}
}

func TestValidateMessages(t *testing.T) {
	o := Defaults()
	o.GraphFile, o.MappingFile = "g", "m"
	o.MaxDistance = -5
	err := Validate(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-distance must be ≥ 0")

	o = Defaults()
	o.GraphFile, o.MappingFile = "g", "m"
	o.Output = "sam"
	err = Validate(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --output "sam"`)
}

func TestConfigFileUnderFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pairwalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_distance: 120\nthreads: 8\noutput: jsonl\nverbose: 1\n"), 0o644))

	o := mustParse(t, "--config", cfg, "-t", "2", "g", "m.gmap")
	assert.Equal(t, 120, o.MaxDistance, "file value replaces default")
	assert.Equal(t, 2, o.Threads, "explicit flag wins over file")
	assert.Equal(t, "jsonl", o.Output)
	assert.Equal(t, 1, o.Verbose)
	assert.Equal(t, "m.connect.jsonl", o.OutFile)
}

func TestConfigFileUnknownKey(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_distanse: 10\n"), 0o644))
	_, err := parse(t, "--config", cfg, "g", "m")
	assert.Error(t, err)
}

func TestConfigFileInvalidValue(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_steps: 0\n"), 0o644))
	_, err := parse(t, "--config", cfg, "g", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-steps")
}

func TestDefaultOutFileStdin(t *testing.T) {
	assert.Equal(t, "-", DefaultOutFile("-", "fasta"))
}
