package joint

import (
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/dynamics/spatialmath"
)

// Revolute is a joint that rotates the child body about a fixed axis
// expressed in the local frame of the joint.
type Revolute struct {
	axis   r3.Vector
	limits Limits
}

// NewRevolute returns a revolute joint about the given axis with
// unbounded limits. The axis is normalized.
func NewRevolute(axis r3.Vector) *Revolute {
	return &Revolute{axis: axis.Normalize(), limits: UnboundedLimits(1)}
}

// NewRevoluteX returns a revolute joint about the x axis.
func NewRevoluteX() *Revolute {
	return NewRevolute(r3.Vector{X: 1})
}

// NewRevoluteY returns a revolute joint about the y axis.
func NewRevoluteY() *Revolute {
	return NewRevolute(r3.Vector{Y: 1})
}

// NewRevoluteZ returns a revolute joint about the z axis.
func NewRevoluteZ() *Revolute {
	return NewRevolute(r3.Vector{Z: 1})
}

// Axis returns the rotation axis in the local frame of the joint.
func (j *Revolute) Axis() r3.Vector {
	return j.axis
}

// SetLimits replaces the limits of the joint.
func (j *Revolute) SetLimits(limits Limits) {
	j.limits = limits
}

// Type returns TypeRevolute.
func (j *Revolute) Type() Type {
	return TypeRevolute
}

// ConfigurationSize returns 1, the joint angle.
func (j *Revolute) ConfigurationSize() int {
	return 1
}

// DoF returns 1.
func (j *Revolute) DoF() int {
	return 1
}

// Neutral returns the zero angle.
func (j *Revolute) Neutral() []float64 {
	return []float64{0}
}

// RandomConfiguration samples an angle within the joint limits.
func (j *Revolute) RandomConfiguration(randSrc *rand.Rand) []float64 {
	return []float64{randomInRange(randSrc, j.limits.MinConfiguration[0], j.limits.MaxConfiguration[0])}
}

// Placement returns a pure rotation of q[0] radians about the joint axis.
func (j *Revolute) Placement(q []float64) spatialmath.SE3 {
	return spatialmath.NewSE3FromAxisAngle(r3.Vector{}, j.axis, q[0])
}

// Subspace returns the angular velocity v[0] about the joint axis.
func (j *Revolute) Subspace(v []float64) spatialmath.Motion {
	return spatialmath.NewMotionFromRotationAxis(j.axis).Scale(v[0])
}

// SubspaceDual projects the torque component of f onto the joint axis.
func (j *Revolute) SubspaceDual(f spatialmath.Force) []float64 {
	return []float64{f.Angular.Dot(j.axis)}
}

// Bias returns the zero motion.
func (j *Revolute) Bias() spatialmath.Motion {
	return spatialmath.Motion{}
}

// Limits returns the limits of the joint.
func (j *Revolute) Limits() Limits {
	return j.limits
}
