package component

// Camera is a viewport centred on the entity's transform.
type Camera struct {
	Width  float64
	Height float64
}

var CameraComponent = NewComponent[Camera]()
