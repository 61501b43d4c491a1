// Package model describes the kinematic tree of an articulated rigid body
// system: its joints, their tree structure, the inertias of the bodies
// attached to them, and the operational frames of interest.
//
// A Model holds the immutable description of the mechanism; the mutable
// buffers the dynamics algorithms read and write live in Data. This split
// lets a single Model drive many concurrent computations, each with its
// own Data.
package model

import (
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/spatialmath"
)

// WorldID is the index of the world entry of every model. The world is
// stored as a fixed joint so that the tree recursions need no special
// casing at the root.
const WorldID = 0

// StandardGravity is the default gravitational acceleration, pointing
// down the z axis.
var StandardGravity = r3.Vector{Z: -9.81}

// Model is the immutable description of a kinematic tree.
//
// Joints are stored in topological order: the parent of joint i always
// has an index smaller than i, with the world entry at index 0. AddJoint
// maintains this invariant, and every recursion over the tree relies
// on it.
type Model struct {
	name            string
	jointNames      []string
	jointParents    []int
	jointPlacements []spatialmath.SE3
	joints          []joint.Joint
	inertias        []spatialmath.Inertia
	frames          []Frame
	nq              int
	nv              int

	// Gravity is the gravitational acceleration applied to the model.
	Gravity r3.Vector
}

// NewModel creates an empty model with the given name, containing only
// the world entry.
func NewModel(name string) *Model {
	return &Model{
		name:            name,
		jointNames:      []string{"universe"},
		jointParents:    []int{WorldID},
		jointPlacements: []spatialmath.SE3{spatialmath.NewSE3Identity()},
		joints:          []joint.Joint{joint.NewFixed()},
		inertias:        []spatialmath.Inertia{{}},
		frames: []Frame{{
			Name:        "universe",
			ParentJoint: WorldID,
			ParentFrame: 0,
			Type:        FrameTypeFixed,
			Placement:   spatialmath.NewSE3Identity(),
		}},
		Gravity: StandardGravity,
	}
}

// AddJoint appends a joint to the tree under the given parent and
// returns its index. The placement locates the joint frame in the
// parent joint frame when the new joint is at its neutral
// configuration. Joint names must be unique within a model.
func (m *Model) AddJoint(parentID int, j joint.Joint, placement spatialmath.SE3, name string) (int, error) {
	if parentID < 0 || parentID >= len(m.joints) {
		return 0, NewParentJointDoesNotExistError(parentID)
	}
	for id, other := range m.jointNames {
		if other == name {
			return 0, NewJointNameAlreadyUsedError(name, id)
		}
	}

	id := len(m.joints)
	m.jointNames = append(m.jointNames, name)
	m.jointParents = append(m.jointParents, parentID)
	m.jointPlacements = append(m.jointPlacements, placement)
	m.joints = append(m.joints, j)
	m.inertias = append(m.inertias, spatialmath.Inertia{})
	m.nq += j.ConfigurationSize()
	m.nv += j.DoF()
	return id, nil
}

// AppendBodyToJoint rigidly attaches a body to the joint with the given
// index. The body inertia is expressed in its own frame, located at
// placement relative to the joint frame; it is transported there and
// merged into the inertia supported by the joint.
func (m *Model) AppendBodyToJoint(jointID int, in spatialmath.Inertia, placement spatialmath.SE3) error {
	if jointID < 0 || jointID >= len(m.joints) {
		return NewParentJointDoesNotExistError(jointID)
	}
	m.inertias[jointID] = m.inertias[jointID].Add(in.Transport(placement))
	return nil
}

// AddFrame registers an operational frame and returns its index. If a
// frame with the same name and type already exists its index is
// returned unchanged.
func (m *Model) AddFrame(f Frame) (int, error) {
	if f.ParentJoint < 0 || f.ParentJoint >= len(m.joints) {
		return 0, NewParentJointDoesNotExistError(f.ParentJoint)
	}
	for id, other := range m.frames {
		if other.Name == f.Name && other.Type == f.Type {
			return id, nil
		}
	}
	m.frames = append(m.frames, f)
	return len(m.frames) - 1, nil
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// NJoints returns the number of joints, including the world entry.
func (m *Model) NJoints() int {
	return len(m.joints)
}

// NFrames returns the number of frames, including the world frame.
func (m *Model) NFrames() int {
	return len(m.frames)
}

// NQ returns the size of a configuration vector for the model.
func (m *Model) NQ() int {
	return m.nq
}

// NV returns the size of a velocity vector for the model, the total
// number of degrees of freedom.
func (m *Model) NV() int {
	return m.nv
}

// Joint returns the joint at the given index.
func (m *Model) Joint(id int) joint.Joint {
	return m.joints[id]
}

// JointName returns the name of the joint at the given index.
func (m *Model) JointName(id int) string {
	return m.jointNames[id]
}

// Parent returns the index of the parent of the joint at the given index.
func (m *Model) Parent(id int) int {
	return m.jointParents[id]
}

// JointPlacement returns the placement of the joint frame in its parent
// joint frame at the neutral configuration.
func (m *Model) JointPlacement(id int) spatialmath.SE3 {
	return m.jointPlacements[id]
}

// Inertia returns the inertia supported by the joint at the given
// index, expressed in the joint frame.
func (m *Model) Inertia(id int) spatialmath.Inertia {
	return m.inertias[id]
}

// Frame returns the frame at the given index.
func (m *Model) Frame(id int) Frame {
	return m.frames[id]
}

// JointID returns the index of the joint with the given name.
func (m *Model) JointID(name string) (int, bool) {
	for id, jointName := range m.jointNames {
		if jointName == name {
			return id, true
		}
	}
	return 0, false
}

// FrameID returns the index of the frame with the given name and type.
// An empty type matches any frame with the name.
func (m *Model) FrameID(name string, frameType FrameType) (int, bool) {
	for id, f := range m.frames {
		if f.Name == name && (frameType == "" || f.Type == frameType) {
			return id, true
		}
	}
	return 0, false
}

// Neutral returns the configuration at which every joint placement is
// the identity.
func (m *Model) Neutral() []float64 {
	q := make([]float64, 0, m.nq)
	for _, j := range m.joints {
		q = append(q, j.Neutral()...)
	}
	return q
}

// RandomConfiguration samples a configuration within the joint limits
// of the model using the given source of randomness.
func (m *Model) RandomConfiguration(randSrc *rand.Rand) []float64 {
	q := make([]float64, 0, m.nq)
	for _, j := range m.joints {
		q = append(q, j.RandomConfiguration(randSrc)...)
	}
	return q
}

// ConfigurationOffset returns the offset of the given joint's variables
// within a configuration vector.
func (m *Model) ConfigurationOffset(jointID int) int {
	offset := 0
	for i := 1; i < jointID; i++ {
		offset += m.joints[i].ConfigurationSize()
	}
	return offset
}

// VelocityOffset returns the offset of the given joint's variables
// within a velocity, acceleration or torque vector.
func (m *Model) VelocityOffset(jointID int) int {
	offset := 0
	for i := 1; i < jointID; i++ {
		offset += m.joints[i].DoF()
	}
	return offset
}
