//go:build !cgo

package cassimp

const errNoCgo = "assimp support requires a cgo build"

type Scene struct{}

func (s *Scene) Incomplete() bool  { return true }
func (s *Scene) HasRootNode() bool { return false }
func (s *Scene) NumMeshes() int    { return 0 }
func (s *Scene) NumMaterials() int { return 0 }
func (s *Scene) NumTextures() int  { return 0 }
func (s *Scene) Release()          {}

type Importer struct {
	lastError string
}

func NewImporter() *Importer {
	return &Importer{}
}

func (im *Importer) ReadFile(path string, flags uint32) *Scene {
	im.lastError = errNoCgo
	return nil
}

func (im *Importer) ErrorString() string {
	return im.lastError
}

type Exporter struct {
	lastError string
}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (ex *Exporter) FormatCount() int {
	return 0
}

func (ex *Exporter) FormatDescription(index int) FormatDesc {
	return FormatDesc{}
}

func (ex *Exporter) Export(scene *Scene, formatID, path string) int {
	ex.lastError = errNoCgo
	return ReturnFailure
}

func (ex *Exporter) ErrorString() string {
	return ex.lastError
}
