package raster_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/raster"
	"github.com/surquest/icon-picker/pkg/transform"
)

const squareMarkup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><path d="M0 0h64v64H0z"/></svg>`

func TestRasterizeProducesExactDimensions(t *testing.T) {
	sizes := []int{16, 64, 512}

	for _, size := range sizes {
		markup, err := transform.Direct(squareMarkup, size, "#ff0000")
		require.NoError(t, err)

		out, err := raster.Rasterize(markup, size)
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestRasterizePaintsRequestedColor(t *testing.T) {
	markup, err := transform.Direct(squareMarkup, 32, "#ff0000")
	require.NoError(t, err)

	out, err := raster.Rasterize(markup, 32)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	r, g, b, a := img.At(16, 16).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRasterizeRejectsUndecodableMarkup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{name: "not_xml", markup: "definitely not svg <<<"},
		{name: "empty", markup: ""},
		{name: "whitespace_only", markup: " \n\t "},
		{name: "invalid_path_data", markup: `<svg viewBox="0 0 24 24"><path d="INVALID"/></svg>`},
		{name: "truncated", markup: `<svg viewBox="0 0 24 24"><path d="M0 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := raster.Rasterize(tt.markup, 64)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeFailed),
				"error code = %v, want DECODE_FAILED", errors.GetErrorCode(err))
		})
	}
}
