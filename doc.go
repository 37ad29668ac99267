// Package cam3d constructs perspective cameras for 3D scenes.
//
// # Overview
//
// cam3d turns a settings tuple (field of view, aspect ratio, near plane,
// far plane) into a ready-to-use [PerspectiveCamera]. It does not render,
// manage a scene graph, or handle input. Interactive control schemes such
// as orbit controls attach to the returned camera from the outside.
//
// # Quick Start
//
//	import "github.com/gogpu/cam3d"
//
//	cam, err := cam3d.InitCamera(cam3d.NewSettings(75, 16.0/9.0, 0.1, 1000))
//	if err != nil {
//	    return err
//	}
//	proj := cam.ProjectionMatrix()
//
// # Adjustments
//
// InitCamera accepts optional [Adjustment] values that run after
// construction. None are applied by default:
//
//	cam, err := cam3d.InitCamera(settings,
//	    cam3d.WithPosition(mgl64.Vec3{0, 2, 5}),
//	    cam3d.WithLookAt(mgl64.Vec3{}),
//	)
//
// # Coordinate System
//
// Right-handed, Y up, camera looking down -Z. Field of view is vertical
// and measured in degrees. Projection produces OpenGL-style clip space
// with normalized device coordinates in [-1, 1] on every axis.
//
// # Validation
//
// Neither the factory nor the constructor range-checks values. A zero
// aspect or a near plane beyond the far plane yields a degenerate matrix,
// not an error. The only construction failure is a settings tuple of the
// wrong length.
package cam3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
