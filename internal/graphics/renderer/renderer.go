// Package renderer draws the scene once per frame in a fixed order.
package renderer

import (
	"errors"
	"fmt"

	"skyfort/internal/geometry"
	"skyfort/internal/graphics"
	"skyfort/internal/logger"
	"skyfort/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Renderer orchestrates rendering via renderable features. The background
// renderable is always drawn after every other one.
type Renderer struct {
	device     graphics.Device
	meshes     Meshes
	projection *graphics.Projection
	clearColor mgl32.Vec4
	ordered    []Renderable
	profile    *profiling.Frame
}

// Options configures a Renderer.
type Options struct {
	Device     graphics.Device
	Meshes     Meshes
	Projection *graphics.Projection
	ClearColor mgl32.Vec4
	Profile    *profiling.Frame
}

// NewRenderer enables depth testing and initializes rs in order, then
// background. background may be nil.
func NewRenderer(opts Options, background Renderable, rs ...Renderable) (*Renderer, error) {
	if opts.Device == nil || opts.Meshes == nil || opts.Projection == nil {
		return nil, errors.New("renderer: device, meshes and projection are required")
	}

	opts.Device.EnableDepthTest()

	r := &Renderer{
		device:     opts.Device,
		meshes:     opts.Meshes,
		projection: opts.Projection,
		clearColor: opts.ClearColor,
		ordered:    rs,
		profile:    opts.Profile,
	}
	if background != nil {
		r.ordered = append(append([]Renderable(nil), rs...), background)
	}

	for _, rr := range r.ordered {
		if err := rr.Init(); err != nil {
			return nil, fmt.Errorf("init renderable: %w", err)
		}
	}

	return r, nil
}

// Render clears the frame and draws every renderable with v's matrices.
func (r *Renderer) Render(v Viewer, dt float64) {
	defer r.profile.Track("renderer.Render")()

	r.device.ClearFrame(r.clearColor)

	ctx := RenderContext{
		Device:     r.device,
		Meshes:     r.meshes,
		Profile:    r.profile,
		DT:         dt,
		View:       v.ViewMatrix(),
		SkyboxView: v.SkyboxView(),
		Proj:       r.projection.Matrix(v.FieldOfView()),
	}

	for _, rr := range r.ordered {
		rr.Render(ctx)
	}
}

// SetViewport resizes the GL viewport and the projection aspect.
func (r *Renderer) SetViewport(width, height int) {
	r.device.SetViewport(width, height)
	r.projection.SetViewport(width, height)
	for _, rr := range r.ordered {
		rr.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.ordered) - 1; i >= 0; i-- {
		r.ordered[i].Dispose()
	}
}

// DrawCount returns the number of vertices to draw for a mesh with the
// given declared count, never more than were uploaded.
func DrawCount(meshes Meshes, h geometry.MeshHandle, declared int32, name string) (int32, error) {
	uploaded, err := meshes.VertexCount(h)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if declared <= 0 {
		return int32(uploaded), nil
	}
	if int(declared) > uploaded {
		logger.Warn("draw count exceeds uploaded vertices, clamping",
			zap.String("object", name),
			zap.Int32("declared", declared),
			zap.Int("uploaded", uploaded),
		)
		return int32(uploaded), nil
	}
	return declared, nil
}
