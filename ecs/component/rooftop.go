package component

// Rooftop is a platform the hopper lands on. CollisionEnabled latches to
// true once the hopper has cleared it and is never reset.
type Rooftop struct {
	CollisionEnabled bool
}

var RooftopComponent = NewComponent[Rooftop]()
