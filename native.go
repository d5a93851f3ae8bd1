package assimpexport

import (
	"github.com/flywave/go-assimp-export/internal/cassimp"
)

type nativeScene struct {
	s *cassimp.Scene
}

func (n *nativeScene) Incomplete() bool  { return n.s.Incomplete() }
func (n *nativeScene) HasRootNode() bool { return n.s.HasRootNode() }
func (n *nativeScene) NumMeshes() int    { return n.s.NumMeshes() }
func (n *nativeScene) NumMaterials() int { return n.s.NumMaterials() }
func (n *nativeScene) NumTextures() int  { return n.s.NumTextures() }
func (n *nativeScene) Release()          { n.s.Release() }

type nativeImporter struct {
	im *cassimp.Importer
}

// NewNativeImporter returns an Importer backed by libassimp.
func NewNativeImporter() Importer {
	return &nativeImporter{im: cassimp.NewImporter()}
}

func (n *nativeImporter) ReadFile(path string, flags PostProcess) Scene {
	s := n.im.ReadFile(path, uint32(flags))
	if s == nil {
		return nil
	}
	return &nativeScene{s: s}
}

func (n *nativeImporter) ErrorString() string {
	return n.im.ErrorString()
}

type nativeExporter struct {
	ex        *cassimp.Exporter
	lastError string
}

// NewNativeExporter returns an Exporter backed by libassimp.
func NewNativeExporter() Exporter {
	return &nativeExporter{ex: cassimp.NewExporter()}
}

func (n *nativeExporter) FormatCount() int {
	return n.ex.FormatCount()
}

func (n *nativeExporter) FormatDescription(index int) ExportFormat {
	d := n.ex.FormatDescription(index)
	return ExportFormat{ID: d.ID, Description: d.Description}
}

func (n *nativeExporter) Export(scene Scene, formatID string, path string) Return {
	ns, ok := scene.(*nativeScene)
	if !ok {
		n.lastError = "scene was not imported by libassimp"
		return ReturnFailure
	}
	n.lastError = ""
	return Return(n.ex.Export(ns.s, formatID, path))
}

func (n *nativeExporter) ErrorString() string {
	if n.lastError != "" {
		return n.lastError
	}
	return n.ex.ErrorString()
}

var (
	_ Importer = (*nativeImporter)(nil)
	_ Exporter = (*nativeExporter)(nil)
	_ Scene    = (*nativeScene)(nil)
)
