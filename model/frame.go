package model

import "go.viam.com/dynamics/spatialmath"

// FrameType classifies the frames attached to a kinematic tree.
type FrameType string

// The supported frame kinds.
const (
	// FrameTypeOperational marks task space frames such as end effectors.
	FrameTypeOperational FrameType = "operational"
	// FrameTypeJoint marks frames coincident with a joint frame.
	FrameTypeJoint FrameType = "joint"
	// FrameTypeFixed marks frames introduced by welded joints.
	FrameTypeFixed FrameType = "fixed"
	// FrameTypeBody marks frames attached to body links.
	FrameTypeBody FrameType = "body"
	// FrameTypeSensor marks sensor mounting frames.
	FrameTypeSensor FrameType = "sensor"
)

// Frame is a named coordinate frame rigidly attached to a joint of the
// tree. Frames carry no degrees of freedom; their world placement is a
// constant offset from their parent joint's placement.
type Frame struct {
	// Name of the frame.
	Name string
	// ParentJoint is the index of the joint the frame is rigidly
	// attached to.
	ParentJoint int
	// ParentFrame is the index of the frame this one was defined
	// relative to, kept for introspection of welded chains.
	ParentFrame int
	// Type classifies the frame.
	Type FrameType
	// Placement locates the frame in the parent joint frame.
	Placement spatialmath.SE3
}
