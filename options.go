package cam3d

import "github.com/go-gl/mathgl/mgl64"

// Adjustment configures a camera after InitCamera constructs it.
// InitCamera applies none by default; callers opt in.
//
// Example:
//
//	cam, err := cam3d.InitCamera(settings,
//	    cam3d.WithPosition(mgl64.Vec3{0, 0, 5}),
//	    cam3d.WithZoom(2),
//	)
type Adjustment func(*PerspectiveCamera)

// WithPosition places the camera at p.
func WithPosition(p mgl64.Vec3) Adjustment {
	return func(c *PerspectiveCamera) {
		c.SetPosition(p)
	}
}

// WithUp sets the camera's up vector.
func WithUp(up mgl64.Vec3) Adjustment {
	return func(c *PerspectiveCamera) {
		c.Up = up
	}
}

// WithLookAt turns the camera toward target. Order matters: apply it
// after WithPosition.
func WithLookAt(target mgl64.Vec3) Adjustment {
	return func(c *PerspectiveCamera) {
		c.LookAt(target)
	}
}

// WithZoom sets the zoom factor and updates the projection.
func WithZoom(zoom float64) Adjustment {
	return func(c *PerspectiveCamera) {
		c.Zoom = zoom
		c.UpdateProjectionMatrix()
	}
}

// WithViewOffset restricts the projection to a window of a larger
// virtual viewport. See PerspectiveCamera.SetViewOffset.
func WithViewOffset(fullWidth, fullHeight, x, y, w, h float64) Adjustment {
	return func(c *PerspectiveCamera) {
		c.SetViewOffset(fullWidth, fullHeight, x, y, w, h)
	}
}
