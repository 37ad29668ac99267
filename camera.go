package cam3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults applied by NewPerspectiveCamera to the fields that are not
// part of the settings tuple.
const (
	DefaultZoom      = 1.0
	DefaultFocus     = 10.0
	DefaultFilmGauge = 35.0 // mm, width of a full-frame film back
)

// PerspectiveCamera projects a 3D scene through a symmetric viewing
// frustum defined by a vertical field of view and two clipping planes.
//
// The four construction parameters are stored exactly as given. After
// changing any exported projection field, call UpdateProjectionMatrix.
// A PerspectiveCamera is not safe for concurrent mutation.
type PerspectiveCamera struct {
	FOV    float64 // vertical field of view, degrees
	Aspect float64 // width / height
	Near   float64
	Far    float64

	Zoom       float64
	Focus      float64 // object distance for stereo and depth-of-field consumers
	FilmGauge  float64 // mm, the larger film dimension
	FilmOffset float64 // mm, horizontal lens shift

	Position mgl64.Vec3
	Up       mgl64.Vec3
	Forward  mgl64.Vec3 // unit view direction

	view *ViewOffset

	projection    mgl64.Mat4
	projectionInv mgl64.Mat4
}

// ViewOffset selects a sub-rectangle of a larger virtual viewport,
// used for multi-monitor and tiled rendering.
type ViewOffset struct {
	FullWidth, FullHeight float64
	OffsetX, OffsetY      float64
	Width, Height         float64
}

// NewPerspectiveCamera creates a camera from positional arguments
// fov, aspect, near, far. Values are not range-checked; any count other
// than SettingsLen fails with ErrSettingsArity.
func NewPerspectiveCamera(args ...float64) (*PerspectiveCamera, error) {
	if len(args) != SettingsLen {
		return nil, fmt.Errorf("%w: got %d values", ErrSettingsArity, len(args))
	}

	c := &PerspectiveCamera{
		FOV:       args[0],
		Aspect:    args[1],
		Near:      args[2],
		Far:       args[3],
		Zoom:      DefaultZoom,
		Focus:     DefaultFocus,
		FilmGauge: DefaultFilmGauge,
		Up:        mgl64.Vec3{0, 1, 0},
		Forward:   mgl64.Vec3{0, 0, -1},
	}
	c.UpdateProjectionMatrix()

	Logger().Debug("perspective camera created",
		"fov", c.FOV, "aspect", c.Aspect, "near", c.Near, "far", c.Far)
	return c, nil
}

// UpdateProjectionMatrix recomputes the projection from the current
// field of view, aspect, clipping planes, zoom, view offset and film offset.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	near := c.Near
	top := near * math.Tan(mgl64.DegToRad(0.5*c.FOV)) / c.Zoom
	height := 2 * top
	width := c.Aspect * height
	left := -0.5 * width

	if v := c.view; v != nil {
		left += v.OffsetX * width / v.FullWidth
		top -= v.OffsetY * height / v.FullHeight
		width *= v.Width / v.FullWidth
		height *= v.Height / v.FullHeight
	}

	if c.FilmOffset != 0 {
		left += near * c.FilmOffset / c.FilmWidth()
	}

	c.projection = mgl64.Frustum(left, left+width, top-height, top, near, c.Far)
	c.projectionInv = c.projection.Inv()

	Logger().Debug("projection updated",
		"left", left, "top", top, "width", width, "height", height, "zoom", c.Zoom)
}

// ProjectionMatrix returns the camera-to-clip-space transform.
func (c *PerspectiveCamera) ProjectionMatrix() mgl64.Mat4 {
	return c.projection
}

// ProjectionMatrixInverse returns the inverse of ProjectionMatrix.
// It is the zero matrix when the projection is degenerate.
func (c *PerspectiveCamera) ProjectionMatrixInverse() mgl64.Mat4 {
	return c.projectionInv
}

// FilmWidth returns the film width in mm for the current aspect.
func (c *PerspectiveCamera) FilmWidth() float64 {
	return c.FilmGauge * math.Min(c.Aspect, 1)
}

// FilmHeight returns the film height in mm for the current aspect.
func (c *PerspectiveCamera) FilmHeight() float64 {
	return c.FilmGauge / math.Max(c.Aspect, 1)
}

// FocalLength returns the lens focal length in mm implied by the
// field of view and film gauge.
func (c *PerspectiveCamera) FocalLength() float64 {
	vExtentSlope := math.Tan(mgl64.DegToRad(0.5 * c.FOV))
	return 0.5 * c.FilmHeight() / vExtentSlope
}

// SetFocalLength sets the field of view from a focal length in mm,
// keeping the film gauge, and updates the projection.
func (c *PerspectiveCamera) SetFocalLength(focalLength float64) {
	vExtentSlope := 0.5 * c.FilmHeight() / focalLength
	c.FOV = mgl64.RadToDeg(2 * math.Atan(vExtentSlope))
	c.UpdateProjectionMatrix()
}

// EffectiveFOV returns the vertical field of view in degrees after zoom.
func (c *PerspectiveCamera) EffectiveFOV() float64 {
	return mgl64.RadToDeg(2 * math.Atan(math.Tan(mgl64.DegToRad(0.5*c.FOV))/c.Zoom))
}

// SetViewOffset restricts the projection to the w×h window at (x, y)
// of a fullWidth×fullHeight virtual viewport and updates the projection.
//
// For example, a 3×2 monitor wall of 1920×1080 screens gives each
// screen fullWidth=5760, fullHeight=2160 and its own x, y offset.
func (c *PerspectiveCamera) SetViewOffset(fullWidth, fullHeight, x, y, w, h float64) {
	c.Aspect = fullWidth / fullHeight
	c.view = &ViewOffset{
		FullWidth:  fullWidth,
		FullHeight: fullHeight,
		OffsetX:    x,
		OffsetY:    y,
		Width:      w,
		Height:     h,
	}
	c.UpdateProjectionMatrix()
}

// ClearViewOffset removes any view offset and updates the projection.
func (c *PerspectiveCamera) ClearViewOffset() {
	c.view = nil
	c.UpdateProjectionMatrix()
}

// View returns a copy of the active view offset, if any.
func (c *PerspectiveCamera) View() (ViewOffset, bool) {
	if c.view == nil {
		return ViewOffset{}, false
	}
	return *c.view, true
}

// Clone returns an independent copy of the camera.
func (c *PerspectiveCamera) Clone() *PerspectiveCamera {
	cp := *c
	if c.view != nil {
		v := *c.view
		cp.view = &v
	}
	return &cp
}
