package joint

import (
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/dynamics/spatialmath"
)

// Prismatic is a joint that translates the child body along a fixed
// axis expressed in the local frame of the joint.
type Prismatic struct {
	axis   r3.Vector
	limits Limits
}

// NewPrismatic returns a prismatic joint along the given axis with
// unbounded limits. The axis is normalized.
func NewPrismatic(axis r3.Vector) *Prismatic {
	return &Prismatic{axis: axis.Normalize(), limits: UnboundedLimits(1)}
}

// NewPrismaticX returns a prismatic joint along the x axis.
func NewPrismaticX() *Prismatic {
	return NewPrismatic(r3.Vector{X: 1})
}

// NewPrismaticY returns a prismatic joint along the y axis.
func NewPrismaticY() *Prismatic {
	return NewPrismatic(r3.Vector{Y: 1})
}

// NewPrismaticZ returns a prismatic joint along the z axis.
func NewPrismaticZ() *Prismatic {
	return NewPrismatic(r3.Vector{Z: 1})
}

// Axis returns the translation axis in the local frame of the joint.
func (j *Prismatic) Axis() r3.Vector {
	return j.axis
}

// SetLimits replaces the limits of the joint.
func (j *Prismatic) SetLimits(limits Limits) {
	j.limits = limits
}

// Type returns TypePrismatic.
func (j *Prismatic) Type() Type {
	return TypePrismatic
}

// ConfigurationSize returns 1, the joint displacement.
func (j *Prismatic) ConfigurationSize() int {
	return 1
}

// DoF returns 1.
func (j *Prismatic) DoF() int {
	return 1
}

// Neutral returns the zero displacement.
func (j *Prismatic) Neutral() []float64 {
	return []float64{0}
}

// RandomConfiguration samples a displacement within the joint limits.
func (j *Prismatic) RandomConfiguration(randSrc *rand.Rand) []float64 {
	return []float64{randomInRange(randSrc, j.limits.MinConfiguration[0], j.limits.MaxConfiguration[0])}
}

// Placement returns a pure translation of q[0] along the joint axis.
func (j *Prismatic) Placement(q []float64) spatialmath.SE3 {
	return spatialmath.NewSE3FromTranslation(j.axis.Mul(q[0]))
}

// Subspace returns the linear velocity v[0] along the joint axis.
func (j *Prismatic) Subspace(v []float64) spatialmath.Motion {
	return spatialmath.NewMotionFromTranslationAxis(j.axis).Scale(v[0])
}

// SubspaceDual projects the force component of f onto the joint axis.
func (j *Prismatic) SubspaceDual(f spatialmath.Force) []float64 {
	return []float64{f.Linear.Dot(j.axis)}
}

// Bias returns the zero motion.
func (j *Prismatic) Bias() spatialmath.Motion {
	return spatialmath.Motion{}
}

// Limits returns the limits of the joint.
func (j *Prismatic) Limits() Limits {
	return j.limits
}
