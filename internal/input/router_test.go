package input

import (
	"testing"

	"skyfort/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

type keySet map[Key]bool

func (k keySet) KeyPressed(key Key) bool { return k[key] }

type lookCall struct {
	x, y      float32
	constrain bool
}

type moveCall struct {
	dir camera.Direction
	dt  float32
}

type recordingCamera struct {
	moves []moveCall
	looks []lookCall
	zooms []float32
}

func (c *recordingCamera) ProcessMovement(dir camera.Direction, dt float32) {
	c.moves = append(c.moves, moveCall{dir, dt})
}

func (c *recordingCamera) ProcessLook(x, y float32, constrain bool) {
	c.looks = append(c.looks, lookCall{x, y, constrain})
}

func (c *recordingCamera) ProcessZoom(y float32) {
	c.zooms = append(c.zooms, y)
}

func TestPollIssuesMovementPerHeldKey(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	quit := r.Poll(keySet{KeyW: true, KeyD: true}, 0.016)
	if quit {
		t.Error("unexpected quit")
	}

	if len(cam.moves) != 2 {
		t.Fatalf("expected 2 movement commands, got %d", len(cam.moves))
	}
	want := []moveCall{{camera.Forward, 0.016}, {camera.Right, 0.016}}
	for i, m := range want {
		if cam.moves[i] != m {
			t.Errorf("move %d = %+v, want %+v", i, cam.moves[i], m)
		}
	}
}

func TestPollNoKeys(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	if r.Poll(keySet{}, 1) {
		t.Error("unexpected quit")
	}
	if len(cam.moves) != 0 {
		t.Errorf("expected no commands, got %d", len(cam.moves))
	}
}

func TestPollEscapeRequestsQuit(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	if !r.Poll(keySet{KeyEscape: true, KeyS: true}, 0.5) {
		t.Error("expected quit when Escape is held")
	}
	if len(cam.moves) != 1 || cam.moves[0].dir != camera.Backward {
		t.Errorf("movement should still be processed on the quit frame, got %+v", cam.moves)
	}
}

func TestRebinding(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	r.UnbindKey(KeyEscape)
	r.BindKey(KeyW, ActionMoveBackward)
	r.BindKey(KeyUnknown, ActionQuit)
	r.BindKey(KeyCount, ActionQuit)

	if r.Binding(KeyEscape) != ActionNone {
		t.Errorf("escape should be unbound")
	}
	if r.Poll(keySet{KeyEscape: true, KeyW: true}, 1) {
		t.Error("unbound escape must not quit")
	}
	if len(cam.moves) != 1 || cam.moves[0].dir != camera.Backward {
		t.Errorf("expected rebound W to move backward, got %+v", cam.moves)
	}
}

func TestFirstCursorSampleIsSuppressed(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	r.HandleCursor(731, 12)
	if len(cam.looks) != 0 {
		t.Fatalf("first sample produced look command %+v", cam.looks)
	}

	r.HandleCursor(741, 2)
	if len(cam.looks) != 1 {
		t.Fatalf("expected one look command, got %d", len(cam.looks))
	}
	want := lookCall{x: 10, y: 10, constrain: true}
	if cam.looks[0] != want {
		t.Errorf("look = %+v, want %+v", cam.looks[0], want)
	}
}

func TestResetCursorRearmsSuppression(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	r.HandleCursor(0, 0)
	r.HandleCursor(5, 5)
	r.ResetCursor()
	r.HandleCursor(500, 500)
	r.HandleCursor(499, 501)

	if len(cam.looks) != 2 {
		t.Fatalf("expected 2 look commands, got %d", len(cam.looks))
	}
	if cam.looks[1] != (lookCall{x: -1, y: -1, constrain: true}) {
		t.Errorf("unexpected look after reset: %+v", cam.looks[1])
	}
}

func TestScrollForwardsToZoom(t *testing.T) {
	cam := &recordingCamera{}
	r := NewRouter(cam)

	r.HandleScroll(2)
	r.HandleScroll(-1.5)

	if len(cam.zooms) != 2 || cam.zooms[0] != 2 || cam.zooms[1] != -1.5 {
		t.Errorf("unexpected zoom commands %v", cam.zooms)
	}
}

func TestRouterDrivesRealCamera(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 5, 40})
	r := NewRouter(c)

	r.HandleCursor(400, 300)
	if c.Yaw != camera.DefaultYaw || c.Pitch != camera.DefaultPitch {
		t.Fatalf("first cursor sample changed orientation: yaw %v pitch %v", c.Yaw, c.Pitch)
	}

	r.HandleCursor(400, -10000)
	if c.Pitch != camera.MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", camera.MaxPitch, c.Pitch)
	}

	for i := 0; i < 10; i++ {
		r.HandleScroll(10)
	}
	if c.Zoom != camera.MinZoom {
		t.Errorf("expected zoom clamped to %v, got %v", camera.MinZoom, c.Zoom)
	}
}
