package types

// MIME types for the artifacts the pipeline produces
const (
	MimeSVG = "image/svg+xml"
	MimePNG = "image/png"
	MimeCSS = "text/css"
	MimeZip = "application/zip"
)

// ExportArtifact is a named byte blob ready to hand to the download sink.
// Artifacts are request-scoped: produced, persisted once, then discarded.
type ExportArtifact struct {
	Filename string
	Bytes    []byte
	MimeType string
}

// BatchEntry records the outcome for one icon of a batch export. Exactly
// one of Artifact and Err is set.
type BatchEntry struct {
	Name     string
	Artifact *ExportArtifact
	Err      error
}

// BatchResult holds one entry per input icon, preserving input order. A
// failure for one icon never drops or reorders the others.
type BatchResult []BatchEntry

// Failed returns the entries whose export did not produce an artifact.
func (r BatchResult) Failed() []BatchEntry {
	var failed []BatchEntry
	for _, e := range r {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}
