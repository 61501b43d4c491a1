package dynamics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
)

// buildPlanarChain is a two-revolute chain in the x-z plane, both
// joints rotating about x, with a tool frame past the second link.
func buildPlanarChain(t *testing.T) *model.Model {
	t.Helper()
	m := model.NewModel("planar")
	j1, err := m.AddJoint(model.WorldID, joint.NewRevoluteX(), spatialmath.NewSE3Identity(), "shoulder")
	test.That(t, err, test.ShouldBeNil)
	j2, err := m.AddJoint(j1, joint.NewRevoluteX(),
		spatialmath.NewSE3FromTranslation(r3.Vector{X: 0.0125, Z: 0.1}), "elbow")
	test.That(t, err, test.ShouldBeNil)
	_, err = m.AddFrame(model.Frame{
		Name:        "tool",
		ParentJoint: j2,
		Type:        model.FrameTypeOperational,
		Placement:   spatialmath.NewSE3FromTranslation(r3.Vector{Z: 0.2}),
	})
	test.That(t, err, test.ShouldBeNil)
	return m
}

func vecAlmostEqual(t *testing.T, got, want r3.Vector, tol float64) {
	t.Helper()
	test.That(t, got.X, test.ShouldAlmostEqual, want.X, tol)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, tol)
	test.That(t, got.Z, test.ShouldAlmostEqual, want.Z, tol)
}

func TestForwardKinematicsNeutral(t *testing.T) {
	m := buildPlanarChain(t)
	d := model.NewData(m)

	err := ForwardKinematics(m, d, m.Neutral(), nil, nil)
	test.That(t, err, test.ShouldBeNil)
	UpdateFramePlacements(m, d)

	vecAlmostEqual(t, d.Placements[1].T, r3.Vector{}, 1e-12)
	vecAlmostEqual(t, d.Placements[2].T, r3.Vector{X: 0.0125, Z: 0.1}, 1e-12)

	toolID, ok := m.FrameID("tool", model.FrameTypeOperational)
	test.That(t, ok, test.ShouldBeTrue)
	vecAlmostEqual(t, d.FramePlacements[toolID].T, r3.Vector{X: 0.0125, Z: 0.3}, 1e-12)
}

func TestForwardKinematicsQuarterTurn(t *testing.T) {
	m := buildPlanarChain(t)
	d := model.NewData(m)

	// rotating the shoulder a quarter turn about x folds the chain into
	// the x-y plane
	err := ForwardKinematics(m, d, []float64{math.Pi / 2, 0}, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	UpdateFramePlacements(m, d)

	vecAlmostEqual(t, d.Placements[2].T, r3.Vector{X: 0.0125, Y: -0.1}, 1e-12)
	toolID, _ := m.FrameID("tool", model.FrameTypeOperational)
	vecAlmostEqual(t, d.FramePlacements[toolID].T, r3.Vector{X: 0.0125, Y: -0.3}, 1e-12)

	// bending the elbow back straightens the tool toward +z again
	err = ForwardKinematics(m, d, []float64{math.Pi / 2, -math.Pi / 2}, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	UpdateFramePlacements(m, d)
	vecAlmostEqual(t, d.FramePlacements[toolID].T, r3.Vector{X: 0.0125, Y: -0.1, Z: 0.2}, 1e-12)
}

func TestForwardKinematicsVelocity(t *testing.T) {
	m := model.NewModel("spinner")
	_, err := m.AddJoint(model.WorldID, joint.NewRevoluteZ(), spatialmath.NewSE3Identity(), "spin")
	test.That(t, err, test.ShouldBeNil)
	d := model.NewData(m)

	err = ForwardKinematics(m, d, []float64{0.3}, []float64{2.0}, []float64{0.5})
	test.That(t, err, test.ShouldBeNil)
	vecAlmostEqual(t, d.Velocities[1].Angular, r3.Vector{Z: 2}, 1e-12)
	vecAlmostEqual(t, d.Velocities[1].Linear, r3.Vector{}, 1e-12)
	vecAlmostEqual(t, d.Accelerations[1].Angular, r3.Vector{Z: 0.5}, 1e-12)
}

func TestForwardKinematicsChainVelocity(t *testing.T) {
	// elbow at rest, shoulder spinning: the elbow frame sees the
	// shoulder rate through the link offset
	m := buildPlanarChain(t)
	d := model.NewData(m)

	omega := 1.5
	err := ForwardKinematics(m, d, []float64{0, 0}, []float64{omega, 0}, nil)
	test.That(t, err, test.ShouldBeNil)

	vecAlmostEqual(t, d.Velocities[2].Angular, r3.Vector{X: omega}, 1e-12)
	// v = omega x r with r the offset from the shoulder axis
	vecAlmostEqual(t, d.Velocities[2].Linear,
		r3.Vector{X: omega}.Cross(r3.Vector{X: 0.0125, Z: 0.1}), 1e-12)
}

func TestForwardKinematicsSizeChecks(t *testing.T) {
	m := buildPlanarChain(t)
	d := model.NewData(m)

	err := ForwardKinematics(m, d, []float64{0}, nil, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "q")

	err = ForwardKinematics(m, d, []float64{0, 0}, []float64{1}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	err = ForwardKinematics(m, d, []float64{0, 0}, []float64{1, 1}, []float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestForwardKinematicsFixedOnly(t *testing.T) {
	// a chain of welds has no variables and a constant pose
	m := model.NewModel("welded")
	id, err := m.AddJoint(model.WorldID, joint.NewFixed(),
		spatialmath.NewSE3FromTranslation(r3.Vector{X: 1}), "weld1")
	test.That(t, err, test.ShouldBeNil)
	_, err = m.AddJoint(id, joint.NewFixed(),
		spatialmath.NewSE3FromAxisAngle(r3.Vector{Y: 2}, r3.Vector{Z: 1}, math.Pi/2), "weld2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.NQ(), test.ShouldEqual, 0)

	d := model.NewData(m)
	err = ForwardKinematics(m, d, nil, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	vecAlmostEqual(t, d.Placements[2].T, r3.Vector{X: 1, Y: 2}, 1e-12)
	test.That(t, d.Placements[2].R.Angle(), test.ShouldAlmostEqual, math.Pi/2)
}
