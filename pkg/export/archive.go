package export

import (
	"archive/zip"
	"bytes"
	"sync"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/logging"
	"github.com/surquest/icon-picker/pkg/types"
)

// DefaultArchiveName is the suggested filename for archive artifacts.
const DefaultArchiveName = "icons.zip"

// Archive exports records into a single zip blob, one entry per icon that
// could be processed. Per-icon conversions run concurrently; entry order
// in the archive always matches input order.
//
// An icon that fails to transform or decode is omitted from the archive,
// never written as an empty entry. When no icon survives, no archive is
// produced and an ARCHIVE_EMPTY error is returned instead. The returned
// BatchResult records the per-icon outcomes either way.
func Archive(records []types.IconRecord, params types.RenderParams, format Format) (*types.ExportArtifact, types.BatchResult, error) {
	logger := logging.GetLogger("export")
	defer logging.LogOperationStart(logger, "archive")()

	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	// All-settled join: every conversion runs to completion, a failed
	// sibling never cancels the rest.
	results := make(types.BatchResult, len(records))
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec types.IconRecord) {
			defer wg.Done()
			var artifact *types.ExportArtifact
			var err error
			if format == FormatBitmap {
				artifact, err = Bitmap(rec, params)
			} else {
				artifact, err = Vector(rec, params)
			}
			results[i] = types.BatchEntry{Name: rec.Name, Artifact: artifact, Err: err}
		}(i, rec)
	}
	wg.Wait()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := 0
	for _, entry := range results {
		if entry.Err != nil {
			logger.Warn().Err(entry.Err).Str("icon", entry.Name).Msg("Skipping icon in archive")
			continue
		}
		w, err := zw.Create(entry.Name + "." + string(format))
		if err != nil {
			_ = zw.Close()
			return nil, results, errors.Wrapf(err, errors.ErrInternal, "cannot add %q to archive", entry.Name)
		}
		if _, err := w.Write(entry.Artifact.Bytes); err != nil {
			_ = zw.Close()
			return nil, results, errors.Wrapf(err, errors.ErrInternal, "cannot write %q to archive", entry.Name)
		}
		entries++
	}
	if err := zw.Close(); err != nil {
		return nil, results, errors.Wrap(err, errors.ErrInternal, "cannot finalize archive")
	}

	if entries == 0 {
		return nil, results, errors.New(errors.ErrArchiveEmpty, "no icons could be exported")
	}

	logger.Debug().Int("icons", len(records)).Int("entries", entries).Msg("Archive assembled")
	return &types.ExportArtifact{
		Filename: DefaultArchiveName,
		Bytes:    buf.Bytes(),
		MimeType: types.MimeZip,
	}, results, nil
}
