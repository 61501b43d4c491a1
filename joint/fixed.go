package joint

import (
	"math/rand"

	"go.viam.com/dynamics/spatialmath"
)

// Fixed is a joint that rigidly attaches the child body to its parent.
// It has no configuration variables and no degrees of freedom; it
// exists so that welded bodies and the world attachment fit the same
// tree structure as actuated joints.
type Fixed struct{}

// NewFixed returns a fixed joint.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Type returns TypeFixed.
func (j *Fixed) Type() Type {
	return TypeFixed
}

// ConfigurationSize returns 0.
func (j *Fixed) ConfigurationSize() int {
	return 0
}

// DoF returns 0.
func (j *Fixed) DoF() int {
	return 0
}

// Neutral returns an empty configuration.
func (j *Fixed) Neutral() []float64 {
	return nil
}

// RandomConfiguration returns an empty configuration.
func (j *Fixed) RandomConfiguration(randSrc *rand.Rand) []float64 {
	return nil
}

// Placement returns the identity transform.
func (j *Fixed) Placement(q []float64) spatialmath.SE3 {
	return spatialmath.NewSE3Identity()
}

// Subspace returns the zero motion.
func (j *Fixed) Subspace(v []float64) spatialmath.Motion {
	return spatialmath.Motion{}
}

// SubspaceDual returns an empty torque vector.
func (j *Fixed) SubspaceDual(f spatialmath.Force) []float64 {
	return nil
}

// Bias returns the zero motion.
func (j *Fixed) Bias() spatialmath.Motion {
	return spatialmath.Motion{}
}

// Limits returns empty limits.
func (j *Fixed) Limits() Limits {
	return UnboundedLimits(0)
}
