package model

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/dynamics/spatialmath"
)

// Data holds the mutable buffers the dynamics algorithms read and
// write. All per-joint slices are indexed by joint id and include the
// world entry; per-variable slices (Tau, DDq) have NV entries.
//
// A Data is bound to the model that created it and must not be shared
// between concurrent computations.
type Data struct {
	// LocalPlacements holds the placement of each joint frame in its
	// parent joint frame at the current configuration.
	LocalPlacements []spatialmath.SE3
	// Placements holds the placement of each joint frame in the world.
	Placements []spatialmath.SE3
	// FramePlacements holds the placement of each operational frame in
	// the world, refreshed from Placements on demand.
	FramePlacements []spatialmath.SE3
	// Velocities holds the spatial velocity of each joint, expressed in
	// the local joint frame.
	Velocities []spatialmath.Motion
	// Accelerations holds the spatial acceleration of each joint,
	// expressed in the local joint frame. The world entry carries the
	// gravity field during the recursions.
	Accelerations []spatialmath.Motion
	// BiasAccelerations holds the velocity-product accelerations used
	// by the forward dynamics recursion.
	BiasAccelerations []spatialmath.Motion
	// Momenta holds the spatial momentum of each joint, the inertia
	// applied to the velocity.
	Momenta []spatialmath.Force
	// Forces holds the net spatial force each joint transmits from its
	// supporting subtree during inverse dynamics.
	Forces []spatialmath.Force
	// ArticulatedInertias holds the 6x6 articulated body inertia of the
	// subtree rooted at each joint.
	ArticulatedInertias []*mat.Dense
	// ArticulatedBias holds the articulated bias force of the subtree
	// rooted at each joint.
	ArticulatedBias []spatialmath.Force
	// JointU, JointD and JointTorque hold the per-joint elimination
	// quantities of the forward dynamics inward sweep, consumed by the
	// outward acceleration sweep.
	JointU      []*mat.VecDense
	JointD      []float64
	JointTorque []float64
	// Tau holds the generalized torques computed by inverse dynamics.
	Tau []float64
	// DDq holds the generalized accelerations computed by forward
	// dynamics.
	DDq []float64
}

// NewData allocates the buffers for one computation over the given
// model. Placements start at the identity and all motion, force and
// variable buffers start at zero.
func NewData(m *Model) *Data {
	njoints := m.NJoints()
	identity := func(n int) []spatialmath.SE3 {
		out := make([]spatialmath.SE3, n)
		for i := range out {
			out[i] = spatialmath.NewSE3Identity()
		}
		return out
	}
	articulated := make([]*mat.Dense, njoints)
	jointU := make([]*mat.VecDense, njoints)
	for i := range articulated {
		articulated[i] = mat.NewDense(6, 6, nil)
		jointU[i] = mat.NewVecDense(6, nil)
	}
	return &Data{
		LocalPlacements:     identity(njoints),
		Placements:          identity(njoints),
		FramePlacements:     identity(m.NFrames()),
		Velocities:          make([]spatialmath.Motion, njoints),
		Accelerations:       make([]spatialmath.Motion, njoints),
		BiasAccelerations:   make([]spatialmath.Motion, njoints),
		Momenta:             make([]spatialmath.Force, njoints),
		Forces:              make([]spatialmath.Force, njoints),
		ArticulatedInertias: articulated,
		ArticulatedBias:     make([]spatialmath.Force, njoints),
		JointU:              jointU,
		JointD:              make([]float64, njoints),
		JointTorque:         make([]float64, njoints),
		Tau:                 make([]float64, m.NV()),
		DDq:                 make([]float64, m.NV()),
	}
}
