package component

import (
	"fmt"
	"math"
)

// Epsilon is the float64 machine epsilon used for stored force checks.
const Epsilon = 0x1p-52

// HopperState is the hopper's vertical motion state. The set of variants is
// closed: HopperRising, HopperPeaking, HopperFalling, HopperBouncing and
// HopperResting.
type HopperState interface {
	Name() string
	hopperState()
}

type HopperRising struct{}

type HopperPeaking struct{}

type HopperFalling struct{}

// HopperBouncing counts debounce frames: down while in contact, up while
// airborne.
type HopperBouncing struct {
	Frames uint32
}

type HopperResting struct{}

func (HopperRising) Name() string  { return "rising" }
func (HopperPeaking) Name() string { return "peaking" }
func (HopperFalling) Name() string { return "falling" }
func (HopperResting) Name() string { return "resting" }
func (s HopperBouncing) Name() string {
	return fmt.Sprintf("bouncing(%d)", s.Frames)
}

func (HopperRising) hopperState()   {}
func (HopperPeaking) hopperState()  {}
func (HopperFalling) hopperState()  {}
func (HopperBouncing) hopperState() {}
func (HopperResting) hopperState()  {}

// IsSoaring reports whether the hopper is airborne and not interacting with
// a rooftop.
func IsSoaring(s HopperState) bool {
	switch s.(type) {
	case HopperRising, HopperPeaking, HopperFalling:
		return true
	default:
		return false
	}
}

// CanJump reports whether a jump request is legal in state s.
func CanJump(s HopperState) bool {
	switch s.(type) {
	case HopperBouncing, HopperResting:
		return true
	default:
		return false
	}
}

// CanNudge reports whether a sideways nudge is legal in state s.
func CanNudge(s HopperState) bool {
	_, ok := s.(HopperRising)
	return ok
}

// Hopper is the player's motion state and the forces still waiting to be
// fed into the physics engine.
type Hopper struct {
	State      HopperState
	JumpForce  float64
	NudgeForce float64
}

// NewHopper returns a hopper in its initial falling state.
func NewHopper() Hopper {
	return Hopper{State: HopperFalling{}}
}

// StartJump stores a fresh jump force, replacing any remainder.
func (h *Hopper) StartJump(force float64) {
	h.JumpForce = math.Abs(force)
}

// StartNudge stores a fresh sideways force. Negative is leftward.
func (h *Hopper) StartNudge(force float64, left bool) {
	force = math.Abs(force)
	if left {
		force = -force
	}
	h.NudgeForce = force
}

// JumpPending reports whether a stored jump force is still being applied.
func (h Hopper) JumpPending() bool {
	return h.JumpForce > Epsilon
}

var HopperComponent = NewComponent[Hopper]()
