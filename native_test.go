package assimpexport

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeServiceMissingInput(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(false)

	assert.Equal(t, "", svc.LastError())
	assert.False(t, svc.Convert(filepath.Join(dir, "missing.usdz"), filepath.Join(dir, "out.obj")))
	assert.True(t, strings.HasPrefix(svc.LastError(), "Import: "), svc.LastError())
	assert.NoFileExists(t, filepath.Join(dir, "out.obj"))
	assert.False(t, UsdzToObj(filepath.Join(dir, "missing.usdz"), filepath.Join(dir, "out.obj")))
}

func TestNativeFormatsDeterministic(t *testing.T) {
	svc := NewService(false)
	assert.Equal(t, svc.ListSupportedFormats(), svc.ListSupportedFormats())
}

func TestNativeExporterRejectsForeignScene(t *testing.T) {
	ex := NewNativeExporter()
	assert.Equal(t, ReturnFailure, ex.Export(&fakeScene{}, TargetFormat, filepath.Join(t.TempDir(), "out.obj")))
	assert.NotEmpty(t, ex.ErrorString())
}
