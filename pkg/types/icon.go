// Package types defines the shared data model for the icon export pipeline.
package types

import "strings"

// IconRecord is one icon in a loaded library. Records are owned by the
// library loader; the pipeline only reads them.
type IconRecord struct {
	// Name uniquely identifies the icon within its library
	Name string

	// Tags are free-form search keywords, in manifest order
	Tags []string

	// Markup is the raw SVG source as fetched
	Markup string
}

// HasTag reports whether the record carries the given tag (case-insensitive).
func (r IconRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
