package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeahead-kit/typeahead/pkg/config"
)

// isolate gives the test an empty working directory and global config dir
// and clears TYPEAHEAD_* variables. It returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	for _, name := range []string{
		config.EnvConfig, config.EnvOpenTag, config.EnvCloseTag, config.EnvErrorTemplate,
		config.EnvEmptyTemplate, config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile,
	} {
		t.Setenv(name, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr, _, err := runWithOptions(t, args...)
	return stdout, stderr, err
}

// runWithOptions is run, also returning the shared options for inspection.
func runWithOptions(t *testing.T, args ...string) (string, string, *rootOptions, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd, opts := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := execute(cmd, opts)
	return stdout.String(), stderr.String(), opts, err
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const citiesJSON = `{
  "cities": [
    {"name": "Berlin", "country": "DE", "population": 3645000},
    {"name": "Bern", "country": "CH", "population": 134000},
    {"name": "Paris", "country": "FR", "population": 2161000}
  ]
}`
