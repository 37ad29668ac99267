package cam3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWithPositionAndLookAt(t *testing.T) {
	c, err := InitCamera(NewSettings(60, 1, 0.1, 100),
		WithPosition(mgl64.Vec3{0, 0, 10}),
		WithLookAt(mgl64.Vec3{0, 0, 20}),
	)
	if err != nil {
		t.Fatalf("InitCamera() error = %v", err)
	}
	if c.Position != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("Position = %v", c.Position)
	}
	if !c.Forward.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Forward = %v, want +Z", c.Forward)
	}
}

func TestWithUp(t *testing.T) {
	up := mgl64.Vec3{0, 0, 1}
	c, err := InitCamera(NewSettings(60, 1, 0.1, 100), WithUp(up))
	if err != nil {
		t.Fatalf("InitCamera() error = %v", err)
	}
	if c.Up != up {
		t.Errorf("Up = %v, want %v", c.Up, up)
	}
}

func TestWithZoom(t *testing.T) {
	c, err := InitCamera(NewSettings(90, 1, 1, 100), WithZoom(2))
	if err != nil {
		t.Fatalf("InitCamera() error = %v", err)
	}
	if c.Zoom != 2 {
		t.Errorf("Zoom = %v, want 2", c.Zoom)
	}
	plain, _ := InitCamera(NewSettings(90, 1, 1, 100))
	if c.ProjectionMatrix() == plain.ProjectionMatrix() {
		t.Error("WithZoom did not update the projection")
	}
}

func TestWithViewOffset(t *testing.T) {
	c, err := InitCamera(NewSettings(60, 1, 0.1, 100), WithViewOffset(1920, 1080, 960, 0, 960, 540))
	if err != nil {
		t.Fatalf("InitCamera() error = %v", err)
	}
	v, ok := c.View()
	if !ok {
		t.Fatal("View() not set")
	}
	if v.OffsetX != 960 || v.Height != 540 {
		t.Errorf("View() = %+v", v)
	}
	if !almostEqual(c.Aspect, 1920.0/1080.0, 1e-12) {
		t.Errorf("Aspect = %v, want full viewport aspect", c.Aspect)
	}
}
