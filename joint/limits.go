package joint

import "math"

// Limits describes the physical constraints and dissipative properties
// of a joint. Configuration bounds have one entry per configuration
// variable.
type Limits struct {
	// Effort is the maximum torque or force the joint can apply.
	Effort float64
	// Velocity is the maximum speed of the joint.
	Velocity float64
	// MinConfiguration and MaxConfiguration bound the configuration
	// variables of the joint.
	MinConfiguration []float64
	MaxConfiguration []float64
	// Friction is the static friction coefficient of the joint.
	Friction float64
	// Damping is the viscous damping coefficient of the joint.
	Damping float64
	// FrictionLoss is the dry friction loss of the joint.
	FrictionLoss float64
}

// UnboundedLimits returns limits that do not constrain the joint:
// infinite effort, velocity and configuration bounds, and no friction
// or damping. The configuration bounds have size nq.
func UnboundedLimits(nq int) Limits {
	minCfg := make([]float64, nq)
	maxCfg := make([]float64, nq)
	for i := 0; i < nq; i++ {
		minCfg[i] = math.Inf(-1)
		maxCfg[i] = math.Inf(1)
	}
	return Limits{
		Effort:           math.Inf(1),
		Velocity:         math.Inf(1),
		MinConfiguration: minCfg,
		MaxConfiguration: maxCfg,
	}
}
