// Package joint models the joints of a kinematic tree.
//
// A joint constrains the relative placement of two bodies to a
// low-dimensional subspace of SE(3). Each joint kind defines a
// configuration vector of size ConfigurationSize and a velocity vector
// of size DoF; for most joints the two coincide, but a continuous
// joint is parametrized on the unit circle and has a configuration of
// size two for a single degree of freedom.
package joint

import (
	"math"
	"math/rand"

	"go.viam.com/dynamics/spatialmath"
)

// Type identifies the kind of a joint.
type Type string

// The supported joint kinds.
const (
	TypeRevolute   Type = "revolute"
	TypeContinuous Type = "continuous"
	TypePrismatic  Type = "prismatic"
	TypeFixed      Type = "fixed"
)

// Joint is the model of a single joint.
//
// Placement, Subspace and SubspaceDual expect slices of length
// ConfigurationSize and DoF respectively; callers validate dimensions
// once at the tree level before recursing.
type Joint interface {
	// Type returns the kind of the joint.
	Type() Type

	// ConfigurationSize returns the number of configuration variables
	// the joint consumes from a configuration vector.
	ConfigurationSize() int

	// DoF returns the number of degrees of freedom, the number of
	// variables the joint consumes from velocity, acceleration and
	// torque vectors.
	DoF() int

	// Neutral returns the configuration at which the joint placement
	// is the identity.
	Neutral() []float64

	// RandomConfiguration samples a configuration within the joint
	// limits using the given source of randomness.
	RandomConfiguration(randSrc *rand.Rand) []float64

	// Placement returns the transform from the child joint frame to
	// the parent joint frame at configuration q.
	Placement(q []float64) spatialmath.SE3

	// Subspace maps a joint velocity to the spatial velocity of the
	// child frame relative to the parent, expressed in the child frame.
	Subspace(v []float64) spatialmath.Motion

	// SubspaceDual projects a spatial force expressed in the child
	// frame onto the joint, yielding the generalized torque.
	SubspaceDual(f spatialmath.Force) []float64

	// Bias returns the velocity-product acceleration contributed by
	// the joint parametrization. It is zero for every joint kind
	// modeled here.
	Bias() spatialmath.Motion

	// Limits returns the physical limits of the joint.
	Limits() Limits
}

// randomInRange samples uniformly from [min, max], substituting a full
// revolution for unbounded limits so that sampling stays finite.
func randomInRange(randSrc *rand.Rand, min, max float64) float64 {
	if math.IsInf(min, -1) {
		min = -math.Pi
	}
	if math.IsInf(max, 1) {
		max = math.Pi
	}
	return min + randSrc.Float64()*(max-min)
}
