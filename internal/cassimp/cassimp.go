//go:build cgo

package cassimp

/*
#cgo pkg-config: assimp
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/cexport.h>
#include <assimp/scene.h>
*/
import "C"

import (
	"unsafe"
)

// Scene wraps an imported aiScene. Release must be called once the scene is
// no longer needed.
type Scene struct {
	ptr *C.struct_aiScene
}

func (s *Scene) Incomplete() bool {
	if s.ptr == nil {
		return true
	}
	return s.ptr.mFlags&C.AI_SCENE_FLAGS_INCOMPLETE != 0
}

func (s *Scene) HasRootNode() bool {
	return s.ptr != nil && s.ptr.mRootNode != nil
}

func (s *Scene) NumMeshes() int {
	if s.ptr == nil {
		return 0
	}
	return int(s.ptr.mNumMeshes)
}

func (s *Scene) NumMaterials() int {
	if s.ptr == nil {
		return 0
	}
	return int(s.ptr.mNumMaterials)
}

func (s *Scene) NumTextures() int {
	if s.ptr == nil {
		return 0
	}
	return int(s.ptr.mNumTextures)
}

// Release frees the scene. Calling it more than once is a no-op.
func (s *Scene) Release() {
	if s.ptr != nil {
		C.aiReleaseImport(s.ptr)
		s.ptr = nil
	}
}

// Importer imports files through aiImportFile and remembers the error
// string of its most recent call.
type Importer struct {
	lastError string
}

func NewImporter() *Importer {
	return &Importer{}
}

// ReadFile returns nil if assimp could not import path.
func (im *Importer) ReadFile(path string, flags uint32) *Scene {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ptr := C.aiImportFile(cpath, C.uint(flags))
	if ptr == nil {
		im.lastError = C.GoString(C.aiGetErrorString())
		if im.lastError == "" {
			im.lastError = "unable to import " + path
		}
		return nil
	}
	im.lastError = ""
	return &Scene{ptr: (*C.struct_aiScene)(unsafe.Pointer(ptr))}
}

func (im *Importer) ErrorString() string {
	return im.lastError
}

// Exporter exports scenes through aiExportScene. The C API does not expose
// the exporter's own message, so failures are described from the return code.
type Exporter struct {
	lastError string
}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (ex *Exporter) FormatCount() int {
	return int(C.aiGetExportFormatCount())
}

func (ex *Exporter) FormatDescription(index int) FormatDesc {
	desc := C.aiGetExportFormatDescription(C.size_t(index))
	if desc == nil {
		return FormatDesc{}
	}
	defer C.aiReleaseExportFormatDescription(desc)
	return FormatDesc{
		ID:            C.GoString(desc.id),
		Description:   C.GoString(desc.description),
		FileExtension: C.GoString(desc.fileExtension),
	}
}

func (ex *Exporter) Export(scene *Scene, formatID, path string) int {
	if scene == nil || scene.ptr == nil {
		ex.lastError = "no scene to export"
		return ReturnFailure
	}
	cformat := C.CString(formatID)
	defer C.free(unsafe.Pointer(cformat))
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	code := int(C.aiExportScene(scene.ptr, cformat, cpath, 0))
	if code != ReturnSuccess {
		ex.lastError = exportFailure(code, formatID, path)
		return code
	}
	ex.lastError = ""
	return code
}

func (ex *Exporter) ErrorString() string {
	return ex.lastError
}
