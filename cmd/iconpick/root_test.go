package iconpick

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdHasExpectedCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"list", "export", "archive", "stylesheet", "version"} {
		assert.Contains(t, names, want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("library"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func writeTestLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	manifest := `
[[icons]]
name = "home"
file = "home.svg"
tags = ["house"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "library.toml"), []byte(manifest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.svg"),
		[]byte(`<svg viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`), 0644))
	return dir
}

func TestExportCommandWritesVectorFile(t *testing.T) {
	libDir := writeTestLibrary(t)
	outDir := t.TempDir()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{
		"export", "home",
		"--library", libDir,
		"--out", outDir,
		"--size", "64",
		"--color", "#ff0000",
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "home.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="64"`)
	assert.Contains(t, string(data), `fill="#ff0000"`)
}

func TestExportCommandRejectsUnknownIcon(t *testing.T) {
	libDir := writeTestLibrary(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"export", "nope", "--library", libDir, "--out", t.TempDir()})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not found"))
}

func TestStylesheetCommandWritesCSS(t *testing.T) {
	libDir := writeTestLibrary(t)
	outDir := t.TempDir()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"stylesheet", "--library", libDir, "--out", outDir})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "icons.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".icon {")
	assert.Contains(t, string(data), ".icon-home {")
}
