package geometry

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed meshes/*.yaml
var meshFS embed.FS

// Mesh names shipped with the binary.
const (
	MeshPyramid = "pyramid"
	MeshGround  = "ground"
	MeshFort    = "fort"
	MeshSkybox  = "skybox"
)

// MeshData is a triangle list read from a mesh file.
type MeshData struct {
	Name     string
	Layout   Layout
	Vertices []float32
}

// VertexCount returns the number of vertices in the table.
func (m MeshData) VertexCount() int {
	if c := m.Layout.Components(); c > 0 {
		return len(m.Vertices) / c
	}
	return 0
}

type meshFile struct {
	Name     string      `yaml:"name"`
	Layout   string      `yaml:"layout"`
	Vertices [][]float32 `yaml:"vertices"`
}

// LoadMesh reads one of the embedded mesh tables by name.
func LoadMesh(name string) (MeshData, error) {
	raw, err := meshFS.ReadFile("meshes/" + name + ".yaml")
	if err != nil {
		return MeshData{}, fmt.Errorf("mesh %s: %w", name, err)
	}
	return ParseMesh(raw)
}

// ParseMesh decodes a mesh table. Every row must have exactly as many
// values as the layout has components.
func ParseMesh(raw []byte) (MeshData, error) {
	var f meshFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return MeshData{}, fmt.Errorf("parse mesh: %w", err)
	}

	layout, err := LayoutByName(f.Layout)
	if err != nil {
		return MeshData{}, fmt.Errorf("mesh %s: %w", f.Name, err)
	}

	components := layout.Components()
	data := make([]float32, 0, len(f.Vertices)*components)
	for i, row := range f.Vertices {
		if len(row) != components {
			return MeshData{}, fmt.Errorf("mesh %s: vertex %d has %d values, want %d", f.Name, i, len(row), components)
		}
		data = append(data, row...)
	}

	return MeshData{Name: f.Name, Layout: layout, Vertices: data}, nil
}
