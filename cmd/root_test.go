package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaan0029/jabref/cmd/check"
	"github.com/Kaan0029/jabref/internal/buildinfo"
)

// execute runs the root command with args. Commands share viper and the
// global logger, so these tests cannot run in parallel.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := RootCommand(&buildinfo.Context{Version: "1.0.0", BuildDate: "2026-10-01"})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	require.NoError(t, Shutdown())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bibcheck 1.0.0")
	assert.Contains(t, stdout, "built 2026-10-01")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bibcheck.yaml", "check:\n  progress: false\n")
	bibFile := writeFile(t, dir, "refs.bib", `@book{One, title = {A}, publisher = {P}}
@book{Two, title = {B}}
`)

	stdout, _, err := execute(t, "check", "--config", cfg, "--format", "json", bibFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"book": {"fields": ["publisher"], "entries": ["One"]}}`, stdout)
}

func TestCheckCommandFailOnFindings(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bibcheck.yaml", "check:\n  progress: false\n")
	bibFile := writeFile(t, dir, "refs.bib", "@misc{a, title = {A}, url = {u}}\n@misc{b, title = {B}}\n")

	_, _, err := execute(t, "check", "--config", cfg, "--fail-on-findings", "--no-progress", bibFile)
	require.ErrorIs(t, err, check.ErrFindings)
}

func TestCheckCommandNoSpinnerWhenStderrIsNotTerminal(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bibcheck.yaml", "check:\n  format: txt\n")
	bibFile := writeFile(t, dir, "refs.bib", "@misc{a, title = {A}, url = {u}}\n@misc{b, title = {B}}\n")

	_, stderr, err := execute(t, "check", "--config", cfg, bibFile)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "\033[")
	assert.NotContains(t, stderr, "checking entry type")
}

func TestCheckCommandRequiresFiles(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
}

func TestCheckCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bibcheck.yaml", "check:\n  format: xml\n")
	bibFile := writeFile(t, dir, "refs.bib", "@misc{a, title = {A}}\n")

	_, _, err := execute(t, "check", "--config", cfg, bibFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check.format")
}
