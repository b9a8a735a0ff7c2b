package component

// RigidBody carries the minimal physics state an external integrator
// needs. Mass of zero is treated as one by Force.Apply.
type RigidBody struct {
	Velocity        Vec2
	AngularVelocity float32 // radians per second
	Mass            float32
}

// ForceKind discriminates the closed set of force variants.
type ForceKind int

const (
	ForceLinear ForceKind = iota
	ForceRotational
	ForceGeneric
)

func (k ForceKind) String() string {
	switch k {
	case ForceLinear:
		return "linear"
	case ForceRotational:
		return "rotational"
	case ForceGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Force is a tagged variant: Linear uses Vector, Rotational uses
// Torque, Generic uses both.
type Force struct {
	Kind   ForceKind
	Vector Vec2
	Torque float32
}

// LinearForce returns a pure translation force.
func LinearForce(x, y float32) Force {
	return Force{Kind: ForceLinear, Vector: Vec2{x, y}}
}

// RotationalForce returns a pure torque.
func RotationalForce(torque float32) Force {
	return Force{Kind: ForceRotational, Torque: torque}
}

// GenericForce combines translation and torque.
func GenericForce(x, y, torque float32) Force {
	return Force{Kind: ForceGeneric, Vector: Vec2{x, y}, Torque: torque}
}

// Apply integrates the force into the body's velocities over dt
// seconds.
func (f Force) Apply(body *RigidBody, dt float32) {
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	switch f.Kind {
	case ForceLinear:
		body.Velocity = body.Velocity.Add(f.Vector.Scale(dt / mass))
	case ForceRotational:
		body.AngularVelocity += f.Torque * dt / mass
	case ForceGeneric:
		body.Velocity = body.Velocity.Add(f.Vector.Scale(dt / mass))
		body.AngularVelocity += f.Torque * dt / mass
	}
}
