package component

// Transform is an entity's centre in y-up world coordinates.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
