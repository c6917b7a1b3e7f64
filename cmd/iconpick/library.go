package iconpick

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surquest/icon-picker/pkg/library"
	"github.com/surquest/icon-picker/pkg/types"
)

// loadRecords resolves the --library flag and loads the icon library. The
// flag may point at a manifest file directly or at a directory containing
// library.toml or library.yaml.
func loadRecords(cmd *cobra.Command) ([]types.IconRecord, error) {
	libPath, err := cmd.Flags().GetString("library")
	if err != nil {
		return nil, err
	}

	dir, manifest := splitLibraryPath(libPath)
	fsys := os.DirFS(dir)

	if manifest != "" {
		return library.Load(fsys, manifest)
	}

	records, err := library.Load(fsys, library.DefaultManifest)
	if err == nil {
		return records, nil
	}
	if yamlRecords, yamlErr := library.Load(fsys, "library.yaml"); yamlErr == nil {
		return yamlRecords, nil
	}
	return nil, err
}

// splitLibraryPath splits a --library value into a root directory and a
// manifest path relative to it. A value with a manifest extension is
// treated as a file, anything else as a directory.
func splitLibraryPath(libPath string) (dir, manifest string) {
	switch strings.ToLower(filepath.Ext(libPath)) {
	case ".toml", ".yaml", ".yml":
		return filepath.Dir(libPath), filepath.Base(libPath)
	default:
		return libPath, ""
	}
}
