// Package graphicstest provides an in-memory graphics.Device for tests.
package graphicstest

import (
	"fmt"

	"skyfort/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded device call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Draw is a recorded draw with the state it was issued under.
type Draw struct {
	VAO       uint32
	Texture   uint32
	Target    graphics.TextureTarget
	DepthFunc graphics.DepthFunc
	First     int32
	Count     int32
}

// Device records every call and tracks the state a real context would hold.
type Device struct {
	Calls []Call
	Draws []Draw

	DepthTest   bool
	Depth       graphics.DepthFunc
	BoundVAO    uint32
	BoundTex    uint32
	BoundTarget graphics.TextureTarget
	Viewport    [2]int
	Clears      int

	Buffers      map[uint32][]float32
	LiveVAOs     map[uint32]bool
	LiveBuffers  map[uint32]bool
	Attribs      map[uint32][][3]int // vao -> {location, size, offset}
	AttribStride map[uint32]int

	nextID uint32
}

// NewDevice returns a device with LESS depth and nothing bound.
func NewDevice() *Device {
	return &Device{
		Buffers:      make(map[uint32][]float32),
		LiveVAOs:     make(map[uint32]bool),
		LiveBuffers:  make(map[uint32]bool),
		Attribs:      make(map[uint32][][3]int),
		AttribStride: make(map[uint32]int),
	}
}

var _ graphics.Device = (*Device)(nil)

func (d *Device) record(op string, args ...any) {
	d.Calls = append(d.Calls, Call{Op: op, Args: args})
}

// Ops returns the recorded operation names in order.
func (d *Device) Ops() []string {
	ops := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls and draws but keeps state.
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
}

func (d *Device) EnableDepthTest() {
	d.record("EnableDepthTest")
	d.DepthTest = true
	d.Depth = graphics.DepthLess
}

func (d *Device) SetViewport(width, height int) {
	d.record("SetViewport", width, height)
	d.Viewport = [2]int{width, height}
}

func (d *Device) ClearFrame(color mgl32.Vec4) {
	d.record("ClearFrame", color)
	d.Clears++
}

func (d *Device) DepthFunc(fn graphics.DepthFunc) {
	d.record("DepthFunc", fn)
	d.Depth = fn
}

func (d *Device) GenVertexArray() uint32 {
	d.nextID++
	d.record("GenVertexArray", d.nextID)
	d.LiveVAOs[d.nextID] = true
	return d.nextID
}

func (d *Device) GenBuffer() uint32 {
	d.nextID++
	d.record("GenBuffer", d.nextID)
	d.LiveBuffers[d.nextID] = true
	return d.nextID
}

func (d *Device) UploadVertices(vao, vbo uint32, data []float32) {
	d.record("UploadVertices", vao, vbo, len(data))
	d.BoundVAO = vao
	d.Buffers[vbo] = append([]float32(nil), data...)
}

func (d *Device) VertexAttrib(location, size, stride, offset int) {
	d.record("VertexAttrib", location, size, stride, offset)
	d.Attribs[d.BoundVAO] = append(d.Attribs[d.BoundVAO], [3]int{location, size, offset})
	d.AttribStride[d.BoundVAO] = stride
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
	d.BoundVAO = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	delete(d.LiveVAOs, vao)
}

func (d *Device) DeleteBuffer(vbo uint32) {
	d.record("DeleteBuffer", vbo)
	delete(d.LiveBuffers, vbo)
	delete(d.Buffers, vbo)
}

func (d *Device) BindTexture(unit int, target graphics.TextureTarget, id uint32) {
	d.record("BindTexture", unit, target, id)
	d.BoundTex = id
	d.BoundTarget = target
}

func (d *Device) DrawTriangles(first, count int32) {
	d.record("DrawTriangles", first, count)
	d.Draws = append(d.Draws, Draw{
		VAO:       d.BoundVAO,
		Texture:   d.BoundTex,
		Target:    d.BoundTarget,
		DepthFunc: d.Depth,
		First:     first,
		Count:     count,
	})
}

// Program records uniform writes and how often it was activated.
type Program struct {
	Name    string
	Uses    int
	Deleted bool
	Ints    map[string]int32
	Mats    map[string]mgl32.Mat4
	Calls   []string

	device *Device
}

// NewProgram returns a program that also records Use on device, if non-nil.
func NewProgram(name string, device *Device) *Program {
	return &Program{
		Name:   name,
		Ints:   make(map[string]int32),
		Mats:   make(map[string]mgl32.Mat4),
		device: device,
	}
}

var _ graphics.Program = (*Program)(nil)

func (p *Program) Use() {
	p.Uses++
	p.Calls = append(p.Calls, "Use")
	if p.device != nil {
		p.device.record("UseProgram", p.Name)
	}
}

func (p *Program) SetInt(name string, value int32) {
	p.Calls = append(p.Calls, "SetInt:"+name)
	p.Ints[name] = value
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	p.Calls = append(p.Calls, "SetMat4:"+name)
	p.Mats[name] = value
}

func (p *Program) Delete() {
	p.Calls = append(p.Calls, "Delete")
	p.Deleted = true
}
