// Package cassimp binds the subset of the assimp C API needed to import a
// scene and export it again. Builds without cgo get a stand-in whose
// importer and exporter always fail.
package cassimp

// Return codes mirrored from aiReturn.
const (
	ReturnSuccess     = 0
	ReturnFailure     = -1
	ReturnOutOfMemory = -3
)

// FormatDesc is a copy of an aiExportFormatDesc.
type FormatDesc struct {
	ID            string
	Description   string
	FileExtension string
}

func exportFailure(code int, formatID, path string) string {
	switch code {
	case ReturnOutOfMemory:
		return "out of memory while exporting " + path + " as " + formatID
	default:
		return "failed to export " + path + " as " + formatID
	}
}
