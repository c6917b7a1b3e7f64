package export

import (
	"fmt"
	"strings"

	"github.com/surquest/icon-picker/pkg/logging"
	"github.com/surquest/icon-picker/pkg/transform"
	"github.com/surquest/icon-picker/pkg/types"
)

// DefaultStylesheetName is the suggested filename for stylesheet artifacts.
const DefaultStylesheetName = "icons.css"

// stylesheetPreamble is the fixed base rule every icon class builds on: a
// square box tinted with currentColor and rendered through a mask.
const stylesheetPreamble = `.icon {
  display: inline-block;
  width: 1em;
  height: 1em;
  background-color: currentColor;
  -webkit-mask-repeat: no-repeat;
  mask-repeat: no-repeat;
  -webkit-mask-position: center;
  mask-position: center;
  -webkit-mask-size: contain;
  mask-size: contain;
}
`

// The data URI is embedded inside a double-quoted CSS string, so quotes
// must be escaped on top of the usual URI-unsafe set.
var dataURIEscaper = strings.NewReplacer(
	"%", "%25",
	"\"", "%22",
	"'", "%27",
	"#", "%23",
	"<", "%3C",
	">", "%3E",
	"&", "%26",
	"\n", "%0A",
	"\r", "%0D",
	"\t", "%09",
)

// Stylesheet exports records as one CSS text blob: the .icon preamble
// followed by one .icon-<name> rule per record, in input order. Records
// without an svg root element are skipped silently; duplicate names emit
// duplicate, shadowing rules.
func Stylesheet(records []types.IconRecord) (*types.ExportArtifact, error) {
	logger := logging.GetLogger("export")

	var b strings.Builder
	b.WriteString(stylesheetPreamble)

	for _, rec := range records {
		masked, err := transform.Mask(rec.Markup)
		if err != nil {
			return nil, err
		}
		if masked == "" {
			logger.Warn().Str("icon", rec.Name).Msg("Skipping icon without svg root in stylesheet")
			continue
		}

		uri := "data:image/svg+xml," + dataURIEscaper.Replace(masked)
		fmt.Fprintf(&b, "\n.icon-%s {\n  -webkit-mask-image: url(\"%s\");\n  mask-image: url(\"%s\");\n}\n",
			rec.Name, uri, uri)
	}

	return &types.ExportArtifact{
		Filename: DefaultStylesheetName,
		Bytes:    []byte(b.String()),
		MimeType: types.MimeCSS,
	}, nil
}
