package component

import "image/color"

// Box is a filled rectangle drawn centred on the entity's transform.
type Box struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Layer  int
}

var BoxComponent = NewComponent[Box]()
