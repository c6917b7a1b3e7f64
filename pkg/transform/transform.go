// Package transform rewrites raw SVG markup for export. It operates on an
// explicit element tree (beevik/etree) with a deterministic serializer, so
// identical inputs always yield byte-identical output.
package transform

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/surquest/icon-picker/pkg/logging"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Shape elements that can carry a fill of their own. Per-element fills
// take precedence over the root default, so direct mode must recolor each
// of them explicitly.
var shapeTags = []string{"path", "circle", "rect", "polygon", "ellipse"}

// Direct rewrites markup for preview, file and archive export: the root
// element gets explicit width/height/fill attributes and every shape
// element is recolored, with inline styles stripped so the requested color
// always wins.
//
// Markup without an <svg> root yields an empty string and no error; the
// caller decides whether "nothing to render" is fatal.
func Direct(markup string, size int, color string) (string, error) {
	root := parseRoot(markup)
	if root == nil {
		return "", nil
	}

	px := strconv.Itoa(size)
	root.CreateAttr("width", px)
	root.CreateAttr("height", px)
	root.CreateAttr("fill", color)
	root.RemoveAttr("style")

	for _, tag := range shapeTags {
		for _, el := range root.FindElements(".//" + tag) {
			el.CreateAttr("fill", color)
			el.RemoveAttr("style")
		}
	}

	return serialize(root)
}

// Mask rewrites markup for stylesheet export: fixed size and color are
// stripped from the root so the shape can be tinted externally via CSS
// masks, and the SVG namespace is declared if the source omitted it
// (undeclared documents fail to render when embedded as a mask source).
//
// Like Direct, markup without an <svg> root yields an empty string.
func Mask(markup string) (string, error) {
	root := parseRoot(markup)
	if root == nil {
		return "", nil
	}

	root.RemoveAttr("width")
	root.RemoveAttr("height")
	root.RemoveAttr("fill")
	root.RemoveAttr("style")
	if root.SelectAttr("xmlns") == nil {
		root.CreateAttr("xmlns", svgNamespace)
	}

	return serialize(root)
}

// parseRoot parses markup and returns its <svg> root element, or nil when
// the document is unparsable or rooted in something else.
func parseRoot(markup string) *etree.Element {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		logger := logging.GetLogger("transform")
		logger.Debug().Err(err).Msg("Markup is not parsable XML")
		return nil
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil
	}
	return root
}

// serialize writes the root element only, without any document wrapper.
func serialize(root *etree.Element) (string, error) {
	out := etree.NewDocument()
	out.SetRoot(root.Copy())
	return out.WriteToString()
}
