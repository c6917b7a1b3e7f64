// Package library loads icon collections from a manifest plus a set of
// SVG files. The manifest is TOML by default, YAML when the file ends in
// .yaml or .yml.
package library

import (
	"io/fs"
	"path"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/logging"
	"github.com/surquest/icon-picker/pkg/types"
)

// DefaultManifest is the manifest filename looked up when the caller
// points at a library directory rather than a manifest file.
const DefaultManifest = "library.toml"

type manifest struct {
	Icons []manifestIcon `toml:"icons" yaml:"icons"`
}

type manifestIcon struct {
	Name string   `toml:"name" yaml:"name"`
	File string   `toml:"file" yaml:"file"`
	Tags []string `toml:"tags" yaml:"tags"`
}

// Load reads the manifest at manifestPath within fsys and returns the icon
// records it describes, in manifest order. Icon files are resolved
// relative to the manifest.
//
// An unreadable or unparsable manifest is fatal (LIBRARY_LOAD), as is a
// manifest that yields zero usable icons (LIBRARY_EMPTY). An individual
// icon file that cannot be read is logged and excluded, never aborting
// the load.
func Load(fsys fs.FS, manifestPath string) ([]types.IconRecord, error) {
	logger := logging.GetLogger("library")
	defer logging.LogOperationStart(logger, "load-library")()

	raw, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLibraryLoad, "cannot read library manifest %s", manifestPath)
	}

	var m manifest
	switch strings.ToLower(path.Ext(manifestPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &m)
	default:
		err = toml.Unmarshal(raw, &m)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLibraryLoad, "cannot parse library manifest %s", manifestPath)
	}

	dir := path.Dir(manifestPath)
	records := make([]types.IconRecord, 0, len(m.Icons))
	seen := make(map[string]bool, len(m.Icons))
	for _, ic := range m.Icons {
		if ic.Name == "" || ic.File == "" {
			logger.Warn().Str("name", ic.Name).Str("file", ic.File).Msg("Skipping manifest entry without name or file")
			continue
		}
		if seen[ic.Name] {
			logger.Warn().Str("icon", ic.Name).Msg("Duplicate icon name in manifest")
		}
		markup, err := fs.ReadFile(fsys, path.Join(dir, ic.File))
		if err != nil {
			logger.Warn().Err(err).Str("icon", ic.Name).Msg("Skipping unreadable icon file")
			continue
		}
		seen[ic.Name] = true
		records = append(records, types.IconRecord{
			Name:   ic.Name,
			Tags:   ic.Tags,
			Markup: string(markup),
		})
	}

	if len(records) == 0 {
		return nil, errors.Newf(errors.ErrLibraryEmpty, "library manifest %s yields no usable icons", manifestPath)
	}

	logger.Info().Int("icons", len(records)).Str("manifest", manifestPath).Msg("Library loaded")
	return records, nil
}

// Find returns the record with the given name, if present.
func Find(records []types.IconRecord, name string) (types.IconRecord, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return types.IconRecord{}, false
}

// FilterByTag returns the records carrying the given tag, preserving
// library order.
func FilterByTag(records []types.IconRecord, tag string) []types.IconRecord {
	filtered := make([]types.IconRecord, 0, len(records))
	for _, r := range records {
		if r.HasTag(tag) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Select returns the records matching names, preserving library order.
// With no names it returns all records. An unknown name is a NOT_FOUND
// error.
func Select(records []types.IconRecord, names []string) ([]types.IconRecord, error) {
	if len(names) == 0 {
		return records, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := Find(records, n); !ok {
			return nil, errors.Newf(errors.ErrNotFound, "icon %q not found in library", n)
		}
		wanted[n] = true
	}

	selected := make([]types.IconRecord, 0, len(names))
	for _, r := range records {
		if wanted[r.Name] {
			selected = append(selected, r)
		}
	}
	return selected, nil
}
