// Package urdf builds kinematic tree models from Unified Robot
// Description Format (URDF) files.
//
// URDF describes a robot as links connected by joints; each joint
// origin is expressed in the frame of its parent link. Welded (fixed)
// joints carry no degrees of freedom, so the builder folds them into
// constant frames and accumulates their offsets into the placement of
// the next moving joint down the chain.
//
// A file may declare more than one root link; each root attaches to
// the world joint, so a single model can hold several disconnected
// mechanisms.
package urdf

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
)

// Config represents the supported fields of a URDF robot element.
type Config struct {
	XMLName xml.Name      `xml:"robot"`
	Name    string        `xml:"name,attr"`
	Links   []LinkConfig  `xml:"link"`
	Joints  []JointConfig `xml:"joint"`
}

// LinkConfig details the XML of a URDF link element.
type LinkConfig struct {
	XMLName  xml.Name        `xml:"link"`
	Name     string          `xml:"name,attr"`
	Inertial *InertialConfig `xml:"inertial,omitempty"`
}

// InertialConfig details the XML of a URDF inertial element.
type InertialConfig struct {
	Origin  *PoseConfig  `xml:"origin,omitempty"`
	Mass    MassConfig   `xml:"mass"`
	Inertia TensorConfig `xml:"inertia"`
}

// MassConfig details the XML of a URDF mass element.
type MassConfig struct {
	Value float64 `xml:"value,attr"`
}

// TensorConfig details the XML of a URDF inertia element, the six
// unique entries of the rotational inertia about the inertial origin.
type TensorConfig struct {
	Ixx float64 `xml:"ixx,attr"`
	Ixy float64 `xml:"ixy,attr"`
	Ixz float64 `xml:"ixz,attr"`
	Iyy float64 `xml:"iyy,attr"`
	Iyz float64 `xml:"iyz,attr"`
	Izz float64 `xml:"izz,attr"`
}

// PoseConfig details the XML of a URDF origin element: a space
// separated translation and roll/pitch/yaw rotation.
type PoseConfig struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

// LinkRef names a link from within a joint element.
type LinkRef struct {
	Link string `xml:"link,attr"`
}

// AxisConfig details the XML of a URDF axis element.
type AxisConfig struct {
	XYZ string `xml:"xyz,attr"`
}

// LimitConfig details the XML of a URDF limit element. Translation
// bounds are in meters, rotation bounds in radians.
type LimitConfig struct {
	Lower    float64 `xml:"lower,attr"`
	Upper    float64 `xml:"upper,attr"`
	Effort   float64 `xml:"effort,attr"`
	Velocity float64 `xml:"velocity,attr"`
}

// DynamicsConfig details the XML of a URDF dynamics element.
type DynamicsConfig struct {
	Damping  float64 `xml:"damping,attr"`
	Friction float64 `xml:"friction,attr"`
}

// JointConfig details the XML of a URDF joint element.
type JointConfig struct {
	XMLName  xml.Name        `xml:"joint"`
	Name     string          `xml:"name,attr"`
	Type     string          `xml:"type,attr"`
	Origin   *PoseConfig     `xml:"origin,omitempty"`
	Parent   LinkRef         `xml:"parent"`
	Child    LinkRef         `xml:"child"`
	Axis     *AxisConfig     `xml:"axis,omitempty"`
	Limit    *LimitConfig    `xml:"limit,omitempty"`
	Dynamics *DynamicsConfig `xml:"dynamics,omitempty"`
}

// ParseFile reads a URDF file and builds the model it describes.
func ParseFile(filename string) (*model.Model, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read URDF file")
	}
	return Parse(xmlData)
}

// Parse builds a model from raw URDF XML data.
func Parse(xmlData []byte) (*model.Model, error) {
	if len(xmlData) == 0 {
		return nil, errors.New("no model information in URDF data")
	}
	cfg := &Config{}
	if err := xml.Unmarshal(xmlData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal URDF data")
	}
	return cfg.Build()
}

// attachment locates a link relative to the model joint supporting it.
type attachment struct {
	jointID   int
	placement spatialmath.SE3
}

// Build assembles the kinematic tree described by the config.
func (cfg *Config) Build() (*model.Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := model.NewModel(cfg.Name)
	links := make(map[string]LinkConfig, len(cfg.Links))
	for _, link := range cfg.Links {
		links[link.Name] = link
	}

	// joints grouped by parent link, in document order
	jointsOf := make(map[string][]JointConfig)
	for _, jc := range cfg.Joints {
		jointsOf[jc.Parent.Link] = append(jointsOf[jc.Parent.Link], jc)
	}

	// walk the tree from the root links, tracking where each link sits
	// relative to the nearest moving joint above it
	attached := make(map[string]attachment, len(cfg.Links))
	queue := cfg.rootLinks()
	for _, root := range queue {
		attached[root] = attachment{jointID: model.WorldID, placement: spatialmath.NewSE3Identity()}
	}

	for len(queue) > 0 {
		linkName := queue[0]
		queue = queue[1:]
		at := attached[linkName]

		if err := appendLinkBody(m, links[linkName], at); err != nil {
			return nil, err
		}

		for _, jc := range jointsOf[linkName] {
			origin, err := poseToSE3(jc.Origin)
			if err != nil {
				return nil, errors.Wrapf(err, "joint %q", jc.Name)
			}
			childAt, err := addJoint(m, jc, attachment{
				jointID:   at.jointID,
				placement: at.placement.Compose(origin),
			})
			if err != nil {
				return nil, err
			}
			attached[jc.Child.Link] = childAt
			queue = append(queue, jc.Child.Link)
		}
	}

	if len(attached) != len(cfg.Links) {
		var unreachable []string
		for _, link := range cfg.Links {
			if _, ok := attached[link.Name]; !ok {
				unreachable = append(unreachable, link.Name)
			}
		}
		return nil, errors.Errorf("links not reachable from any root link: %s",
			strings.Join(unreachable, ", "))
	}
	return m, nil
}

// validate rejects malformed link/joint graphs before building.
func (cfg *Config) validate() error {
	var err error
	linkNames := make(map[string]bool, len(cfg.Links))
	for _, link := range cfg.Links {
		if linkNames[link.Name] {
			err = multierr.Append(err, errors.Errorf("duplicate link name %q", link.Name))
		}
		linkNames[link.Name] = true
	}

	jointNames := make(map[string]bool, len(cfg.Joints))
	childLinks := make(map[string]bool, len(cfg.Joints))
	for _, jc := range cfg.Joints {
		if jointNames[jc.Name] {
			err = multierr.Append(err, errors.Errorf("duplicate joint name %q", jc.Name))
		}
		jointNames[jc.Name] = true
		if !linkNames[jc.Parent.Link] {
			err = multierr.Append(err, errors.Errorf("joint %q references unknown parent link %q", jc.Name, jc.Parent.Link))
		}
		if !linkNames[jc.Child.Link] {
			err = multierr.Append(err, errors.Errorf("joint %q references unknown child link %q", jc.Name, jc.Child.Link))
		}
		if childLinks[jc.Child.Link] {
			err = multierr.Append(err, errors.Errorf("link %q is the child of more than one joint", jc.Child.Link))
		}
		childLinks[jc.Child.Link] = true
	}
	if err != nil {
		return err
	}

	if len(cfg.Links) > 0 && len(cfg.rootLinks()) == 0 {
		return errors.New("no root link: every link is the child of a joint")
	}
	return nil
}

// rootLinks returns the links that are not the child of any joint, in
// document order.
func (cfg *Config) rootLinks() []string {
	children := make(map[string]bool, len(cfg.Joints))
	for _, jc := range cfg.Joints {
		children[jc.Child.Link] = true
	}
	var roots []string
	for _, link := range cfg.Links {
		if !children[link.Name] {
			roots = append(roots, link.Name)
		}
	}
	return roots
}

// addJoint adds one URDF joint to the model and returns the attachment
// of its child link. at already includes the joint origin and any
// welded offsets above it.
func addJoint(m *model.Model, jc JointConfig, at attachment) (attachment, error) {
	if jc.Type == "fixed" {
		if _, err := m.AddFrame(model.Frame{
			Name:        jc.Name,
			ParentJoint: at.jointID,
			Type:        model.FrameTypeFixed,
			Placement:   at.placement,
		}); err != nil {
			return attachment{}, errors.Wrapf(err, "joint %q", jc.Name)
		}
		return at, nil
	}

	axis := r3.Vector{X: 1}
	if jc.Axis != nil {
		parsed, err := parseTriple(jc.Axis.XYZ)
		if err != nil {
			return attachment{}, errors.Wrapf(err, "joint %q axis", jc.Name)
		}
		axis = parsed
	}

	var j joint.Joint
	switch jc.Type {
	case "revolute":
		rev := joint.NewRevolute(axis)
		rev.SetLimits(configLimits(jc, rev.Limits()))
		j = rev
	case "continuous":
		cont := joint.NewContinuous(axis)
		cont.SetLimits(motionLimits(jc, cont.Limits()))
		j = cont
	case "prismatic":
		pris := joint.NewPrismatic(axis)
		pris.SetLimits(configLimits(jc, pris.Limits()))
		j = pris
	default:
		return attachment{}, errors.Errorf("joint %q has unsupported type %q", jc.Name, jc.Type)
	}

	jointID, err := m.AddJoint(at.jointID, j, at.placement, jc.Name)
	if err != nil {
		return attachment{}, errors.Wrapf(err, "joint %q", jc.Name)
	}
	if _, err := m.AddFrame(model.Frame{
		Name:        jc.Name,
		ParentJoint: jointID,
		Type:        model.FrameTypeJoint,
		Placement:   spatialmath.NewSE3Identity(),
	}); err != nil {
		return attachment{}, errors.Wrapf(err, "joint %q", jc.Name)
	}
	return attachment{jointID: jointID, placement: spatialmath.NewSE3Identity()}, nil
}

// configLimits merges the URDF limit and dynamics elements into joint
// limits with position bounds.
func configLimits(jc JointConfig, limits joint.Limits) joint.Limits {
	if jc.Limit != nil {
		limits.Effort = jc.Limit.Effort
		limits.Velocity = jc.Limit.Velocity
		limits.MinConfiguration = []float64{jc.Limit.Lower}
		limits.MaxConfiguration = []float64{jc.Limit.Upper}
	}
	if jc.Dynamics != nil {
		limits.Damping = jc.Dynamics.Damping
		limits.Friction = jc.Dynamics.Friction
	}
	return limits
}

// motionLimits merges only the rate limits, leaving the configuration
// bounds of a continuous joint untouched.
func motionLimits(jc JointConfig, limits joint.Limits) joint.Limits {
	if jc.Limit != nil {
		limits.Effort = jc.Limit.Effort
		limits.Velocity = jc.Limit.Velocity
	}
	if jc.Dynamics != nil {
		limits.Damping = jc.Dynamics.Damping
		limits.Friction = jc.Dynamics.Friction
	}
	return limits
}

// appendLinkBody registers a body frame for the link and merges its
// inertia into the supporting joint.
func appendLinkBody(m *model.Model, link LinkConfig, at attachment) error {
	if _, err := m.AddFrame(model.Frame{
		Name:        link.Name,
		ParentJoint: at.jointID,
		Type:        model.FrameTypeBody,
		Placement:   at.placement,
	}); err != nil {
		return errors.Wrapf(err, "link %q", link.Name)
	}
	if link.Inertial == nil {
		return nil
	}

	origin, err := poseToSE3(link.Inertial.Origin)
	if err != nil {
		return errors.Wrapf(err, "link %q inertial origin", link.Name)
	}
	tensor := link.Inertial.Inertia
	moment := spatialmath.NewSymmetric3(
		tensor.Ixx, tensor.Iyy, tensor.Izz,
		tensor.Ixy, tensor.Ixz, tensor.Iyz,
	)
	// the tensor is expressed about the inertial origin; transport it
	// into the link frame before merging
	in := spatialmath.NewInertia(link.Inertial.Mass.Value, r3.Vector{}, moment).Transport(origin)
	return m.AppendBodyToJoint(at.jointID, in, at.placement)
}

// poseToSE3 converts an origin element to a transform. A nil origin or
// missing attribute is the identity.
func poseToSE3(pose *PoseConfig) (spatialmath.SE3, error) {
	if pose == nil {
		return spatialmath.NewSE3Identity(), nil
	}
	xyz := r3.Vector{}
	if pose.XYZ != "" {
		parsed, err := parseTriple(pose.XYZ)
		if err != nil {
			return spatialmath.SE3{}, err
		}
		xyz = parsed
	}
	rot := spatialmath.NewRotationMatrix()
	if pose.RPY != "" {
		rpy, err := parseTriple(pose.RPY)
		if err != nil {
			return spatialmath.SE3{}, err
		}
		rot = spatialmath.NewRotationMatrixFromEuler(rpy.X, rpy.Y, rpy.Z)
	}
	return spatialmath.NewSE3(rot, xyz), nil
}

// parseTriple reads three space separated floats.
func parseTriple(s string) (r3.Vector, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("expected 3 space separated values, got %q", s)
	}
	var out [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "invalid value %q", field)
		}
		out[i] = value
	}
	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}, nil
}
