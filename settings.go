package cam3d

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Settings is the ordered construction tuple of a perspective camera:
// vertical field of view in degrees, aspect ratio, near plane, far plane.
//
// Settings is passed through to NewPerspectiveCamera unchecked. A tuple
// of the wrong length is reported by the constructor, not here.
type Settings []float64

// NewSettings returns the settings tuple for the given camera parameters.
func NewSettings(fov, aspect, near, far float64) Settings {
	return Settings{fov, aspect, near, far}
}

// settingsFile is the on-disk form read by LoadSettings:
//
//	camera: [75, 1.7778, 0.1, 1000]
type settingsFile struct {
	Camera []float64 `yaml:"camera"`
}

// LoadSettings decodes a YAML settings document from r.
// The camera sequence is returned verbatim, whatever its length.
func LoadSettings(r io.Reader) (Settings, error) {
	var f settingsFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		Logger().Warn("settings decode failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettingsFile, err)
	}
	if f.Camera == nil {
		return nil, fmt.Errorf("%w: missing camera sequence", ErrInvalidSettingsFile)
	}
	return Settings(f.Camera), nil
}
