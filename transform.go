package cam3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SetPosition moves the camera without changing its view direction.
func (c *PerspectiveCamera) SetPosition(p mgl64.Vec3) {
	c.Position = p
}

// LookAt turns the camera toward target. It is a no-op when target
// coincides with the camera position.
func (c *PerspectiveCamera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	c.Forward = dir.Normalize()
}

// poleNudge tilts a view direction parallel to Up just enough to give
// the view basis a well-defined right vector.
const poleNudge = 0.0001

// ViewMatrix returns the world-to-camera transform. A camera looking
// straight along Up (top-down or bottom-up) is tilted by poleNudge.
func (c *PerspectiveCamera) ViewMatrix() mgl64.Mat4 {
	f := c.Forward
	if f.Cross(c.Up).Len() == 0 {
		if math.Abs(c.Up.Z()) == 1 {
			f[0] += poleNudge
		} else {
			f[2] += poleNudge
		}
		f = f.Normalize()
	}
	return mgl64.LookAtV(c.Position, c.Position.Add(f), c.Up)
}

// ProjectClip transforms a world-space point into homogeneous clip space.
// Points in front of the camera have W > 0.
func (c *PerspectiveCamera) ProjectClip(world mgl64.Vec3) mgl64.Vec4 {
	return c.projection.Mul4(c.ViewMatrix()).Mul4x1(world.Vec4(1))
}

// Project transforms a world-space point into normalized device
// coordinates. Visible points fall within [-1, 1] on every axis.
func (c *PerspectiveCamera) Project(world mgl64.Vec3) mgl64.Vec3 {
	clip := c.ProjectClip(world)
	return clip.Vec3().Mul(1 / clip.W())
}

// Unproject maps normalized device coordinates back to world space.
func (c *PerspectiveCamera) Unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	inv := c.ViewMatrix().Inv().Mul4(c.projectionInv)
	p := inv.Mul4x1(ndc.Vec4(1))
	return p.Vec3().Mul(1 / p.W())
}
