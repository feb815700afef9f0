package geometry

import (
	"errors"
	"fmt"

	"skyfort/internal/graphics"
)

var (
	ErrEmptyMesh       = errors.New("mesh has no vertices")
	ErrPartialVertex   = errors.New("vertex data is not a whole number of vertices")
	ErrPartialTriangle = errors.New("vertex count is not a whole number of triangles")
	ErrUnknownMesh     = errors.New("unknown mesh handle")
)

// MeshHandle identifies an uploaded mesh. The zero handle is never valid.
type MeshHandle int

type mesh struct {
	vao, vbo    uint32
	vertexCount int
	layout      Layout
}

// Store uploads meshes once and keeps their buffers until Dispose.
type Store struct {
	device graphics.Device
	meshes []mesh
}

// NewStore creates an empty store on device.
func NewStore(device graphics.Device) *Store {
	return &Store{device: device}
}

// UploadMesh copies data into a new static vertex buffer and configures its
// attributes from layout.
func (s *Store) UploadMesh(data []float32, layout Layout) (MeshHandle, error) {
	components := layout.Components()
	if len(data) == 0 || components == 0 {
		return 0, ErrEmptyMesh
	}
	if len(data)%components != 0 {
		return 0, fmt.Errorf("%w: %d floats with %d per vertex", ErrPartialVertex, len(data), components)
	}
	count := len(data) / components
	if count%3 != 0 {
		return 0, fmt.Errorf("%w: %d vertices", ErrPartialTriangle, count)
	}

	vao := s.device.GenVertexArray()
	vbo := s.device.GenBuffer()
	s.device.UploadVertices(vao, vbo, data)
	for i, attr := range layout.Attributes {
		s.device.VertexAttrib(attr.Location, attr.Size, layout.Stride(), layout.Offset(i))
	}
	s.device.BindVertexArray(0)

	s.meshes = append(s.meshes, mesh{vao: vao, vbo: vbo, vertexCount: count, layout: layout})
	return MeshHandle(len(s.meshes)), nil
}

// Bind makes the mesh's vertex array current.
func (s *Store) Bind(h MeshHandle) error {
	m, err := s.get(h)
	if err != nil {
		return err
	}
	s.device.BindVertexArray(m.vao)
	return nil
}

// Unbind clears the current vertex array.
func (s *Store) Unbind() {
	s.device.BindVertexArray(0)
}

// VertexCount returns the number of vertices uploaded for h.
func (s *Store) VertexCount(h MeshHandle) (int, error) {
	m, err := s.get(h)
	if err != nil {
		return 0, err
	}
	return m.vertexCount, nil
}

// Dispose deletes every vertex array and buffer. Handles are invalid afterwards.
func (s *Store) Dispose() {
	for _, m := range s.meshes {
		s.device.DeleteVertexArray(m.vao)
		s.device.DeleteBuffer(m.vbo)
	}
	s.meshes = nil
}

func (s *Store) get(h MeshHandle) (*mesh, error) {
	if h <= 0 || int(h) > len(s.meshes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMesh, h)
	}
	return &s.meshes[h-1], nil
}
