// Package wireframe draws line-segment geometry through a camera
// projection. It exists to preview a camera, not to render scenes.
package wireframe

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"

	"github.com/gogpu/cam3d"
)

// Projector maps world-space points into homogeneous clip space.
// *cam3d.PerspectiveCamera implements it.
type Projector interface {
	ProjectClip(world mgl64.Vec3) mgl64.Vec4
}

// Segment is a world-space line segment.
type Segment struct {
	A, B mgl64.Vec3
}

// Cube returns the 12 edges of an axis-aligned cube.
func Cube(center mgl64.Vec3, size float64) []Segment {
	h := size / 2
	var v [8]mgl64.Vec3
	for i := range v {
		v[i] = center.Add(mgl64.Vec3{
			sign(i&1 != 0) * h,
			sign(i&2 != 0) * h,
			sign(i&4 != 0) * h,
		})
	}

	segs := make([]Segment, 0, 12)
	for i := range v {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				segs = append(segs, Segment{A: v[i], B: v[i|bit]})
			}
		}
	}
	return segs
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}

// Render rasterizes segs into dst as lines of the given pixel width and
// returns how many were drawn. Segments are clipped to the view volume;
// those entirely outside it are skipped.
func Render(dst *image.RGBA, p Projector, segs []Segment, c color.Color, width float64) int {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	drawn := 0
	for _, s := range segs {
		ca, cb, ok := clipSegment(p.ProjectClip(s.A), p.ProjectClip(s.B))
		if !ok {
			continue
		}
		a, ok := toScreen(ca, w, h)
		if !ok {
			continue
		}
		e, ok := toScreen(cb, w, h)
		if !ok {
			continue
		}
		addLine(z, a, e, width)
		drawn++
	}

	if drawn > 0 {
		z.Draw(dst, b, image.NewUniform(c), image.Point{})
	}
	cam3d.Logger().Debug("wireframe rendered", "segments", len(segs), "drawn", drawn)
	return drawn
}

// clipPlanes returns the signed distances of a clip-space point to the
// six view-volume planes. A point is inside when all are non-negative.
func clipPlanes(p mgl64.Vec4) [6]float64 {
	x, y, z, w := p.Elem()
	return [6]float64{w + x, w - x, w + y, w - y, w + z, w - z}
}

// clipSegment clips a→b against the view volume in homogeneous clip
// space (Liang-Barsky). It reports false when nothing of the segment
// is visible.
func clipSegment(a, b mgl64.Vec4) (mgl64.Vec4, mgl64.Vec4, bool) {
	da, db := clipPlanes(a), clipPlanes(b)
	t0, t1 := 0.0, 1.0
	for i := range da {
		switch {
		case da[i] < 0 && db[i] < 0:
			return a, b, false
		case da[i] < 0:
			t0 = max(t0, da[i]/(da[i]-db[i]))
		case db[i] < 0:
			t1 = min(t1, da[i]/(da[i]-db[i]))
		}
	}
	if t0 > t1 {
		return a, b, false
	}

	d := b.Sub(a)
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

// toScreen converts a clipped clip-space point to pixel coordinates
// with y down.
func toScreen(clip mgl64.Vec4, w, h float64) (mgl64.Vec2, bool) {
	cw := clip.W()
	if cw <= 0 {
		return mgl64.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / cw)
	return mgl64.Vec2{(ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h}, true
}

// addLine appends a quad of the given width covering a→b.
func addLine(z *vector.Rasterizer, a, b mgl64.Vec2, width float64) {
	d := b.Sub(a)
	if d.Len() == 0 {
		return
	}
	n := mgl64.Vec2{-d.Y(), d.X()}.Normalize().Mul(width / 2)

	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	z.MoveTo(float32(p0.X()), float32(p0.Y()))
	z.LineTo(float32(p1.X()), float32(p1.Y()))
	z.LineTo(float32(p2.X()), float32(p2.Y()))
	z.LineTo(float32(p3.X()), float32(p3.Y()))
	z.ClosePath()
}
