package component

// Input stores per-frame edge-triggered presses for an entity.
type Input struct {
	JumpPressed  bool
	LeftPressed  bool
	RightPressed bool
}

var InputComponent = NewComponent[Input]()
