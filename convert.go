// Package assimpexport converts USDZ assets to Wavefront OBJ through libassimp.
package assimpexport

// Version of the package.
const Version = "0.1.3"

// Converter is the conversion surface of Service.
type Converter interface {
	ListSupportedFormats() []string
	Convert(inputPath, outputPath string) bool
	Run(inputPath, outputPath string) (*Report, error)
	LastError() string
}

// UsdzToObj converts one file with a fresh, silent Service.
func UsdzToObj(inputPath, outputPath string) bool {
	return NewService(false).Convert(inputPath, outputPath)
}

var _ Converter = (*Service)(nil)
