package assimpexport

import (
	"os"
	"path/filepath"

	gobj "github.com/flywave/go-obj"
	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/pkg/errors"
)

// ErrEmptyObj is returned for an OBJ file without vertices.
var ErrEmptyObj = errors.New("obj file has no vertices")

const defaultMaterial = "default"

// ObjSummary is what InspectObj learned about an OBJ file.
type ObjSummary struct {
	Path      string
	Vertices  int
	TexCoords int
	Normals   int
	Faces     int
	// Triangles counts faces after fan triangulation.
	Triangles int
	// BadIndices counts face corners referencing a missing vertex.
	BadIndices int
	// Materials lists face materials in first use order.
	Materials        []string
	MaterialLib      string
	MissingMaterials []string
	Textures         []TextureInfo
	Bounds           vec3d.Box
}

// InspectObj parses an OBJ file and its material library.
func InspectObj(path string) (*ObjSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open obj")
	}
	defer file.Close()

	reader := &gobj.ObjReader{}
	if err := reader.Read(file); err != nil {
		return nil, errors.Wrapf(err, "parse obj %s", path)
	}
	if len(reader.V) == 0 {
		return nil, errors.Wrap(ErrEmptyObj, path)
	}

	summary := &ObjSummary{
		Path:      path,
		Vertices:  len(reader.V),
		TexCoords: len(reader.VT),
		Normals:   len(reader.VN),
		Faces:     len(reader.F),
	}

	bbox := vec3d.MinBox
	for _, v := range reader.V {
		bbox.Extend(&vec3d.T{float64(v[0]), float64(v[1]), float64(v[2])})
	}
	summary.Bounds = bbox

	seen := make(map[string]bool)
	for _, face := range reader.F {
		name := face.Material
		if name == "" {
			name = defaultMaterial
		}
		if !seen[name] {
			seen[name] = true
			summary.Materials = append(summary.Materials, name)
		}
		if len(face.Corners) >= 3 {
			summary.Triangles += len(face.Corners) - 2
		}
		for _, corner := range face.Corners {
			if corner.VertexIndex < 0 || corner.VertexIndex >= len(reader.V) {
				summary.BadIndices++
			}
		}
	}

	if reader.MTL != "" {
		summary.MaterialLib = resolveRelative(path, reader.MTL)
		inspectMaterials(summary)
	}
	return summary, nil
}

func inspectMaterials(summary *ObjSummary) {
	materials, err := gobj.ReadMaterials(summary.MaterialLib)
	if err != nil {
		for _, name := range summary.Materials {
			if name != defaultMaterial {
				summary.MissingMaterials = append(summary.MissingMaterials, name)
			}
		}
		return
	}

	for _, name := range summary.Materials {
		mat, ok := materials[name]
		if !ok || mat == nil {
			if name != defaultMaterial {
				summary.MissingMaterials = append(summary.MissingMaterials, name)
			}
			continue
		}
		for _, tex := range []string{
			mat.DiffuseTexture,
			mat.AmbientTexture,
			mat.SpecularTexture,
			mat.EmissiveTexture,
			mat.BumpTexture,
		} {
			if tex == "" {
				continue
			}
			summary.Textures = append(summary.Textures, inspectTexture(summary.Path, name, tex))
		}
	}
}

func inspectTexture(objPath, material, texturePath string) TextureInfo {
	info := TextureInfo{Material: material, Path: resolveTexture(objPath, texturePath)}
	w, h, format, err := probeTexture(info.Path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Format = format
	info.Width = w
	info.Height = h
	return info
}

func resolveRelative(objPath, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(objPath), ref)
}

// resolveTexture looks next to the OBJ first, then falls back to the bare
// file name in the same directory.
func resolveTexture(objPath, texturePath string) string {
	fullPath := resolveRelative(objPath, texturePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		alt := filepath.Join(filepath.Dir(objPath), filepath.Base(texturePath))
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}
	return fullPath
}
