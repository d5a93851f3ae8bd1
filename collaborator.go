package assimpexport

import (
	"fmt"
	"strings"
)

// PostProcess is the import-time post-processing bitmask understood by assimp.
type PostProcess uint32

const (
	PostProcessJoinIdenticalVertices PostProcess = 0x2
	PostProcessTriangulate           PostProcess = 0x8
	PostProcessGenSmoothNormals      PostProcess = 0x40
	PostProcessFlipUVs               PostProcess = 0x800000
)

// ConvertFlags is the fixed flag set requested for every conversion.
const ConvertFlags = PostProcessTriangulate |
	PostProcessFlipUVs |
	PostProcessGenSmoothNormals |
	PostProcessJoinIdenticalVertices

var postProcessNames = []struct {
	flag PostProcess
	name string
}{
	{PostProcessTriangulate, "Triangulate"},
	{PostProcessFlipUVs, "FlipUVs"},
	{PostProcessGenSmoothNormals, "GenSmoothNormals"},
	{PostProcessJoinIdenticalVertices, "JoinIdenticalVertices"},
}

func (p PostProcess) String() string {
	var names []string
	rest := p
	for _, n := range postProcessNames {
		if p&n.flag != 0 {
			names = append(names, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Return is the result code of an export.
type Return int

const (
	ReturnSuccess     Return = 0
	ReturnFailure     Return = -1
	ReturnOutOfMemory Return = -3
)

func (r Return) String() string {
	switch r {
	case ReturnSuccess:
		return "success"
	case ReturnFailure:
		return "failure"
	case ReturnOutOfMemory:
		return "out of memory"
	}
	return fmt.Sprintf("return(%d)", int(r))
}

// ExportFormat describes one format the exporter can write.
type ExportFormat struct {
	ID          string
	Description string
}

func (f ExportFormat) String() string {
	return f.ID + " - " + f.Description
}

// Scene is a parsed asset owned by the importer. It is only valid until
// Release is called.
type Scene interface {
	Incomplete() bool
	HasRootNode() bool
	NumMeshes() int
	NumMaterials() int
	NumTextures() int
	Release()
}

// Importer reads asset files. ReadFile returns nil when the file could not
// be imported; ErrorString then describes why.
type Importer interface {
	ReadFile(path string, flags PostProcess) Scene
	ErrorString() string
}

// Exporter writes scenes in one of its registered formats.
type Exporter interface {
	FormatCount() int
	FormatDescription(index int) ExportFormat
	Export(scene Scene, formatID string, path string) Return
	ErrorString() string
}
