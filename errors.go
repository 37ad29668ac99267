package cam3d

import "errors"

// SettingsLen is the number of positional values a perspective camera
// is constructed from: field of view, aspect, near, far.
const SettingsLen = 4

var (
	// ErrSettingsArity is returned by NewPerspectiveCamera when it is not
	// given exactly SettingsLen values.
	ErrSettingsArity = errors.New("cam3d: perspective camera takes fov, aspect, near, far")

	// ErrInvalidSettingsFile is returned by LoadSettings when the input
	// is not a YAML document with a camera sequence.
	ErrInvalidSettingsFile = errors.New("cam3d: invalid settings file")
)
