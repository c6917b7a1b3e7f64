// Package raster converts transformed SVG markup into PNG bitmaps.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/logging"
)

// Rasterize renders markup onto a transparent surface of exactly
// size x size pixels and encodes it as PNG. The surface, scanner and icon
// are allocated per call and never shared, so concurrent invocations
// cannot race.
//
// Markup the SVG parser rejects surfaces as a DECODE_FAILED error; callers
// running batches treat that as a per-item failure.
func Rasterize(markup string, size int) (out []byte, err error) {
	logger := logging.GetLogger("raster")

	// The renderer panics on some degenerate path data; fold that into
	// the same per-item decode failure as a parse error.
	defer func() {
		if r := recover(); r != nil {
			logger.Debug().Interface("panic", r).Msg("SVG renderer panicked")
			out = nil
			err = errors.Newf(errors.ErrDecodeFailed, "svg renderer failed: %v", r)
		}
	}()

	if strings.TrimSpace(markup) == "" {
		return nil, errors.New(errors.ErrDecodeFailed, "empty svg markup")
	}

	// Strict mode so malformed path data fails the decode instead of
	// producing a blank surface.
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup), oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecodeFailed, "cannot decode svg markup")
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode png")
	}

	logger.Trace().Int("size", size).Int("bytes", buf.Len()).Msg("Rasterized icon")
	return buf.Bytes(), nil
}
