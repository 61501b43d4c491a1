package joint

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/dynamics/spatialmath"
)

// Continuous is a revolute joint without position limits. Instead of a
// wrapped angle its configuration is the unit circle parametrization
// (cos θ, sin θ), which keeps configuration space free of the
// discontinuity at ±π. The velocity remains the scalar angular rate.
//
// The parametrization is taken at face value: a configuration off the
// unit circle is mapped through atan2 without renormalization.
type Continuous struct {
	axis   r3.Vector
	limits Limits
}

// NewContinuous returns a continuous joint about the given axis. The
// axis is normalized. Configuration bounds are set slightly outside
// [-1, 1] to admit unit circle values with rounding slack.
func NewContinuous(axis r3.Vector) *Continuous {
	limits := UnboundedLimits(2)
	for i := 0; i < 2; i++ {
		limits.MinConfiguration[i] = -1.01
		limits.MaxConfiguration[i] = 1.01
	}
	return &Continuous{axis: axis.Normalize(), limits: limits}
}

// NewContinuousX returns a continuous joint about the x axis.
func NewContinuousX() *Continuous {
	return NewContinuous(r3.Vector{X: 1})
}

// NewContinuousY returns a continuous joint about the y axis.
func NewContinuousY() *Continuous {
	return NewContinuous(r3.Vector{Y: 1})
}

// NewContinuousZ returns a continuous joint about the z axis.
func NewContinuousZ() *Continuous {
	return NewContinuous(r3.Vector{Z: 1})
}

// Axis returns the rotation axis in the local frame of the joint.
func (j *Continuous) Axis() r3.Vector {
	return j.axis
}

// SetLimits replaces the limits of the joint.
func (j *Continuous) SetLimits(limits Limits) {
	j.limits = limits
}

// Type returns TypeContinuous.
func (j *Continuous) Type() Type {
	return TypeContinuous
}

// ConfigurationSize returns 2, the cosine and sine of the joint angle.
func (j *Continuous) ConfigurationSize() int {
	return 2
}

// DoF returns 1.
func (j *Continuous) DoF() int {
	return 1
}

// Neutral returns (1, 0), the unit circle point at zero angle.
func (j *Continuous) Neutral() []float64 {
	return []float64{1, 0}
}

// RandomConfiguration samples a uniformly distributed point on the
// unit circle.
func (j *Continuous) RandomConfiguration(randSrc *rand.Rand) []float64 {
	angle := randSrc.Float64() * 2 * math.Pi
	return []float64{math.Cos(angle), math.Sin(angle)}
}

// Placement returns a pure rotation of atan2(q[1], q[0]) radians about
// the joint axis.
func (j *Continuous) Placement(q []float64) spatialmath.SE3 {
	angle := math.Atan2(q[1], q[0])
	return spatialmath.NewSE3FromAxisAngle(r3.Vector{}, j.axis, angle)
}

// Subspace returns the angular velocity v[0] about the joint axis.
func (j *Continuous) Subspace(v []float64) spatialmath.Motion {
	return spatialmath.NewMotionFromRotationAxis(j.axis).Scale(v[0])
}

// SubspaceDual projects the torque component of f onto the joint axis.
func (j *Continuous) SubspaceDual(f spatialmath.Force) []float64 {
	return []float64{f.Angular.Dot(j.axis)}
}

// Bias returns the zero motion.
func (j *Continuous) Bias() spatialmath.Motion {
	return spatialmath.Motion{}
}

// Limits returns the limits of the joint.
func (j *Continuous) Limits() Limits {
	return j.limits
}
