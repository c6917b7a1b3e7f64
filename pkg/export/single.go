// Package export packages processed icons into downloadable artifacts:
// single vector or bitmap files, zip archives, and mask-based stylesheets.
package export

import (
	"strings"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/raster"
	"github.com/surquest/icon-picker/pkg/transform"
	"github.com/surquest/icon-picker/pkg/types"
)

// Format selects the per-icon output of an archive export.
type Format string

const (
	FormatVector Format = "svg"
	FormatBitmap Format = "png"
)

// Vector exports one icon as a self-contained SVG document with explicit
// width, height and fill.
func Vector(rec types.IconRecord, params types.RenderParams) (*types.ExportArtifact, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	markup, err := transform.Direct(rec.Markup, params.Size, params.Color)
	if err != nil {
		return nil, err
	}
	if markup == "" {
		return nil, errors.Newf(errors.ErrMalformedMarkup, "icon %q has no svg root element", rec.Name)
	}

	return &types.ExportArtifact{
		Filename: artifactBasename(rec.Name) + ".svg",
		Bytes:    []byte(markup),
		MimeType: types.MimeSVG,
	}, nil
}

// Bitmap exports one icon as a PNG of exactly Size x Size pixels. Decode
// failures from the rasterizer propagate to the caller.
func Bitmap(rec types.IconRecord, params types.RenderParams) (*types.ExportArtifact, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	markup, err := transform.Direct(rec.Markup, params.Size, params.Color)
	if err != nil {
		return nil, err
	}
	if markup == "" {
		return nil, errors.Newf(errors.ErrMalformedMarkup, "icon %q has no svg root element", rec.Name)
	}

	bitmap, err := raster.Rasterize(markup, params.Size)
	if err != nil {
		return nil, err
	}

	return &types.ExportArtifact{
		Filename: artifactBasename(rec.Name) + ".png",
		Bytes:    bitmap,
		MimeType: types.MimePNG,
	}, nil
}

// artifactBasename lowercases an icon name and collapses whitespace runs
// to single underscores, yielding a filesystem-friendly filename stem.
func artifactBasename(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
