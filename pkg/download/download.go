// Package download persists export artifacts for the user.
package download

import (
	"os"
	"path/filepath"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/logging"
	"github.com/surquest/icon-picker/pkg/types"
)

// Sink receives finished artifacts. Triggering a download is
// fire-and-forget from the pipeline's perspective.
type Sink interface {
	Trigger(artifact *types.ExportArtifact) error
}

// DirSink writes artifacts into a target directory, creating it on first
// use.
type DirSink struct {
	Dir string
}

// Trigger writes the artifact under the sink directory using its
// suggested filename.
func (s DirSink) Trigger(artifact *types.ExportArtifact) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create output directory %s", s.Dir)
	}

	dest := filepath.Join(s.Dir, artifact.Filename)
	if err := os.WriteFile(dest, artifact.Bytes, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dest)
	}

	logger := logging.GetLogger("download")
	logger.Debug().
		Str("path", dest).
		Str("mime", artifact.MimeType).
		Int("bytes", len(artifact.Bytes)).
		Msg("Artifact written")
	return nil
}
