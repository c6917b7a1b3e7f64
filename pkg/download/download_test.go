package download_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surquest/icon-picker/pkg/download"
	"github.com/surquest/icon-picker/pkg/types"
)

func TestDirSinkWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	artifact := &types.ExportArtifact{
		Filename: "home.svg",
		Bytes:    []byte("<svg/>"),
		MimeType: types.MimeSVG,
	}

	err := download.DirSink{Dir: dir}.Trigger(artifact)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "home.svg"))
	require.NoError(t, err)
	assert.Equal(t, artifact.Bytes, data)
}

func TestDirSinkCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	artifact := &types.ExportArtifact{Filename: "icons.zip", Bytes: []byte{0x50, 0x4b}}

	err := download.DirSink{Dir: dir}.Trigger(artifact)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "icons.zip"))
	assert.NoError(t, err)
}
