package types

import (
	"regexp"
	"strings"

	"github.com/surquest/icon-picker/pkg/errors"
)

// Size limits for rendered icons, in pixels
const (
	MinSize = 16
	MaxSize = 512
)

var hexColorRegexp = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// RenderParams holds the user-chosen size and fill color for one export
// request. Construct fresh per request and call Validate before handing
// the params to any pipeline component.
type RenderParams struct {
	// Size is the target width and height in pixels
	Size int

	// Color is the fill color as a 6-digit hex string, normalized by
	// Validate to lowercase with a leading '#'
	Color string
}

// Validate normalizes the color in place and rejects out-of-domain values.
// It returns an INVALID_PARAMS error when the size is outside [MinSize,
// MaxSize] or the color is not a 6-digit hex string.
func (p *RenderParams) Validate() error {
	if p.Size < MinSize || p.Size > MaxSize {
		return errors.Newf(errors.ErrInvalidParams,
			"size %d out of range [%d, %d]", p.Size, MinSize, MaxSize).
			WithDetail("size", p.Size)
	}

	color := strings.ToLower(strings.TrimSpace(p.Color))
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	if !hexColorRegexp.MatchString(color) {
		return errors.Newf(errors.ErrInvalidParams, "color %q is not a 6-digit hex color", p.Color).
			WithDetail("color", p.Color)
	}
	p.Color = color

	return nil
}
