// Package main simulates a two link arm: it builds the model from a
// URDF file (or a built-in default), then walks through forward
// kinematics, gravity compensation, and a short free-fall rollout.
package main

import (
	"context"
	"flag"
	"math"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	goutils "go.viam.com/utils"

	"go.viam.com/dynamics/dynamics"
	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
	"go.viam.com/dynamics/urdf"
	"go.viam.com/dynamics/utils"
)

var logger = golog.NewDevelopmentLogger("twolink")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flag.Parse()

	var m *model.Model
	var err error
	if flag.Arg(0) != "" {
		m, err = urdf.ParseFile(flag.Arg(0))
		if err != nil {
			return err
		}
		logger.Infow("loaded model from URDF", "name", m.Name(), "joints", m.NJoints()-1)
	} else {
		m, err = buildDefaultArm()
		if err != nil {
			return err
		}
		logger.Infow("built default two link arm", "joints", m.NJoints()-1)
	}

	d := model.NewData(m)

	// reach a random configuration and report the joint placements
	q := m.RandomConfiguration(rand.New(rand.NewSource(1)))
	if err := dynamics.ForwardKinematics(m, d, q, nil, nil); err != nil {
		return err
	}
	dynamics.UpdateFramePlacements(m, d)
	for id := 1; id < m.NJoints(); id++ {
		logger.Infow("joint placement", "joint", m.JointName(id), "position", d.Placements[id].T)
	}

	// torques needed to hold that pose
	zero := make([]float64, m.NV())
	tau, err := dynamics.InverseDynamics(m, d, q, zero, zero)
	if err != nil {
		return err
	}
	logger.Infow("gravity compensation", "tau", tau)

	// let it fall for half a second of simulated time
	v := make([]float64, m.NV())
	const dt = 1e-3
	for step := 0; step < 500; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ddq, err := dynamics.ForwardDynamics(m, d, q, v, zero)
		if err != nil {
			return err
		}
		q, v = integrate(m, q, v, ddq, dt)
	}
	logger.Infow("after free fall", "q", q, "v", v)
	qOffset := 0
	for id := 1; id < m.NJoints(); id++ {
		j := m.Joint(id)
		if j.Type() == joint.TypeRevolute {
			logger.Infow("free fall swing", "joint", m.JointName(id),
				"deg", utils.RadToDeg(utils.AngleDiffRad(q[qOffset], 0)))
		}
		qOffset += j.ConfigurationSize()
	}
	return nil
}

// buildDefaultArm is a planar two link arm with point masses at the
// link midpoints.
func buildDefaultArm() (*model.Model, error) {
	m := model.NewModel("twolink")
	shoulder, err := m.AddJoint(model.WorldID, joint.NewRevoluteY(), spatialmath.NewSE3Identity(), "shoulder")
	if err != nil {
		return nil, err
	}
	elbow, err := m.AddJoint(shoulder, joint.NewRevoluteY(),
		spatialmath.NewSE3FromTranslation(r3.Vector{X: 0.3}), "elbow")
	if err != nil {
		return nil, err
	}

	upper, err := spatialmath.NewInertiaFromEllipsoid(1.0, 0.15, 0.03, 0.03)
	if err != nil {
		return nil, err
	}
	if err := m.AppendBodyToJoint(shoulder, upper,
		spatialmath.NewSE3FromTranslation(r3.Vector{X: 0.15})); err != nil {
		return nil, err
	}
	lower, err := spatialmath.NewInertiaFromEllipsoid(0.6, 0.12, 0.02, 0.02)
	if err != nil {
		return nil, err
	}
	if err := m.AppendBodyToJoint(elbow, lower,
		spatialmath.NewSE3FromTranslation(r3.Vector{X: 0.12})); err != nil {
		return nil, err
	}
	if _, err := m.AddFrame(model.Frame{
		Name:        "hand",
		ParentJoint: elbow,
		Type:        model.FrameTypeOperational,
		Placement:   spatialmath.NewSE3FromTranslation(r3.Vector{X: 0.24}),
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// integrate advances the configuration by one explicit Euler step,
// stepping continuous joints on the unit circle.
func integrate(m *model.Model, q, v, ddq []float64, dt float64) ([]float64, []float64) {
	qNext := make([]float64, len(q))
	vNext := make([]float64, len(v))
	for i := range v {
		vNext[i] = v[i] + ddq[i]*dt
	}

	qOffset, vOffset := 0, 0
	for id := 1; id < m.NJoints(); id++ {
		j := m.Joint(id)
		switch j.Type() {
		case joint.TypeContinuous:
			angle := math.Atan2(q[qOffset+1], q[qOffset]) + v[vOffset]*dt
			qNext[qOffset] = math.Cos(angle)
			qNext[qOffset+1] = math.Sin(angle)
		default:
			for k := 0; k < j.ConfigurationSize(); k++ {
				qNext[qOffset+k] = q[qOffset+k] + v[vOffset+k]*dt
			}
		}
		qOffset += j.ConfigurationSize()
		vOffset += j.DoF()
	}
	return qNext, vNext
}
