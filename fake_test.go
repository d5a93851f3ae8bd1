package assimpexport

import (
	"os"
)

const triangleObj = "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 3/1/1\n"

type fakeScene struct {
	incomplete bool
	noRoot     bool
	meshes     int
	materials  int
	textures   int
	released   int
}

func (s *fakeScene) Incomplete() bool  { return s.incomplete }
func (s *fakeScene) HasRootNode() bool { return !s.noRoot }
func (s *fakeScene) NumMeshes() int    { return s.meshes }
func (s *fakeScene) NumMaterials() int { return s.materials }
func (s *fakeScene) NumTextures() int  { return s.textures }
func (s *fakeScene) Release()          { s.released++ }

// fakeImporter serves scenes by path. Unknown paths fail with a
// file-not-found message unless errs overrides it.
type fakeImporter struct {
	scenes    map[string]*fakeScene
	errs      map[string]string
	lastError string
	flags     []PostProcess
}

func newFakeImporter() *fakeImporter {
	return &fakeImporter{scenes: map[string]*fakeScene{}, errs: map[string]string{}}
}

func (im *fakeImporter) ReadFile(path string, flags PostProcess) Scene {
	im.flags = append(im.flags, flags)
	if s, ok := im.scenes[path]; ok {
		im.lastError = im.errs[path]
		return s
	}
	msg, ok := im.errs[path]
	if !ok {
		msg = "Unable to open file \"" + path + "\"."
	}
	im.lastError = msg
	return nil
}

func (im *fakeImporter) ErrorString() string { return im.lastError }

type fakeExport struct {
	scene  Scene
	format string
	path   string
}

// fakeExporter writes objData to the target path unless the path is
// listed in fail.
type fakeExporter struct {
	formats   []ExportFormat
	fail      map[string]Return
	failMsg   string
	objData   string
	exports   []fakeExport
	lastError string
}

func newFakeExporter() *fakeExporter {
	return &fakeExporter{
		formats: []ExportFormat{
			{ID: "collada", Description: "COLLADA - Digital Asset Exchange Schema"},
			{ID: "obj", Description: "Wavefront OBJ format"},
			{ID: "stl", Description: "Stereolithography"},
		},
		fail:    map[string]Return{},
		failMsg: "Could not open output file",
		objData: triangleObj,
	}
}

func (ex *fakeExporter) FormatCount() int { return len(ex.formats) }

func (ex *fakeExporter) FormatDescription(index int) ExportFormat { return ex.formats[index] }

func (ex *fakeExporter) Export(scene Scene, formatID string, path string) Return {
	ex.exports = append(ex.exports, fakeExport{scene: scene, format: formatID, path: path})
	if code, ok := ex.fail[path]; ok {
		ex.lastError = ex.failMsg
		return code
	}
	if err := os.WriteFile(path, []byte(ex.objData), 0o644); err != nil {
		ex.lastError = err.Error()
		return ReturnFailure
	}
	ex.lastError = ""
	return ReturnSuccess
}

func (ex *fakeExporter) ErrorString() string { return ex.lastError }
