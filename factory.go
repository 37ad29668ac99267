package cam3d

// InitCamera constructs a perspective camera from settings and applies
// the given adjustments in order.
//
// Settings are spread into NewPerspectiveCamera without validation and
// its error is returned as is. Every call yields a new camera owned by
// the caller; nothing is cached.
func InitCamera(settings Settings, adjust ...Adjustment) (*PerspectiveCamera, error) {
	camera, err := NewPerspectiveCamera(settings...)
	if err != nil {
		return nil, err
	}

	for _, a := range adjust {
		a(camera)
	}
	return camera, nil
}
