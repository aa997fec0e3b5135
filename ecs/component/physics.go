package component

// PhysicsBody stores collider configuration. The runtime Chipmunk body and
// shape live in ecs.PhysicsWorld, keyed by entity.
type PhysicsBody struct {
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
