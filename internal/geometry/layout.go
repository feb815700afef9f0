// Package geometry owns the static vertex buffers of the scene meshes.
package geometry

import "fmt"

const floatSize = 4

// Attribute is one float vector attribute of an interleaved vertex.
type Attribute struct {
	Location int
	Size     int // number of float32 components
}

// Layout describes an interleaved float32 vertex.
type Layout struct {
	Name       string
	Attributes []Attribute
}

var (
	// PositionTexCoord is vec3 position at location 0 and vec2 texcoord at 1.
	PositionTexCoord = Layout{
		Name:       "position_texcoord",
		Attributes: []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 2}},
	}
	// PositionOnly is vec3 position at location 0.
	PositionOnly = Layout{
		Name:       "position",
		Attributes: []Attribute{{Location: 0, Size: 3}},
	}
)

// Components returns the number of floats per vertex.
func (l Layout) Components() int {
	n := 0
	for _, a := range l.Attributes {
		n += a.Size
	}
	return n
}

// Stride returns the vertex size in bytes.
func (l Layout) Stride() int {
	return l.Components() * floatSize
}

// Offset returns the byte offset of attribute i.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l.Attributes[:i] {
		off += a.Size
	}
	return off * floatSize
}

// LayoutByName resolves the layout names used in mesh files.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case PositionTexCoord.Name:
		return PositionTexCoord, nil
	case PositionOnly.Name:
		return PositionOnly, nil
	default:
		return Layout{}, fmt.Errorf("unknown vertex layout %q", name)
	}
}
