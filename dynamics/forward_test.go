package dynamics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/dynamics/model"
)

func TestForwardDynamicsPendulumFreeFall(t *testing.T) {
	mass, length := 2.0, 0.5
	m := buildPendulum(t, mass, length)
	d := model.NewData(m)

	// released horizontally with no torque: qdd = g cos(q) / l
	for _, q := range []float64{0, 0.4, math.Pi / 2, -1.2} {
		ddq, err := ForwardDynamics(m, d, []float64{q}, []float64{0}, []float64{0})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ddq[0], test.ShouldAlmostEqual, 9.81*math.Cos(q)/length, 1e-10)
	}
}

func TestForwardDynamicsInvertsInverseDynamics(t *testing.T) {
	m := buildMixedTree(t)
	dInv := model.NewData(m)
	dFwd := model.NewData(m)

	randSrc := rand.New(rand.NewSource(61))
	for i := 0; i < 20; i++ {
		q := m.RandomConfiguration(randSrc)
		v := randomVector(randSrc, m.NV())
		a := randomVector(randSrc, m.NV())

		tau, err := InverseDynamics(m, dInv, q, v, a)
		test.That(t, err, test.ShouldBeNil)
		ddq, err := ForwardDynamics(m, dFwd, q, v, tau)
		test.That(t, err, test.ShouldBeNil)

		for k := 0; k < m.NV(); k++ {
			test.That(t, ddq[k], test.ShouldAlmostEqual, a[k], 1e-8)
		}
	}
}

func TestForwardDynamicsGravityCompensation(t *testing.T) {
	// the torques that hold the mechanism still produce zero acceleration
	m := buildMixedTree(t)
	dInv := model.NewData(m)
	dFwd := model.NewData(m)

	randSrc := rand.New(rand.NewSource(62))
	zero := make([]float64, m.NV())
	for i := 0; i < 10; i++ {
		q := m.RandomConfiguration(randSrc)
		tau, err := InverseDynamics(m, dInv, q, zero, zero)
		test.That(t, err, test.ShouldBeNil)
		ddq, err := ForwardDynamics(m, dFwd, q, zero, tau)
		test.That(t, err, test.ShouldBeNil)
		for k := 0; k < m.NV(); k++ {
			test.That(t, ddq[k], test.ShouldAlmostEqual, 0, 1e-9)
		}
	}
}

func TestForwardDynamicsZeroGravityRest(t *testing.T) {
	m := buildMixedTree(t)
	m.Gravity = r3.Vector{}
	d := model.NewData(m)

	q := m.Neutral()
	zero := make([]float64, m.NV())
	ddq, err := ForwardDynamics(m, d, q, zero, zero)
	test.That(t, err, test.ShouldBeNil)
	for k := 0; k < m.NV(); k++ {
		test.That(t, ddq[k], test.ShouldAlmostEqual, 0, 1e-12)
	}
}

func TestForwardDynamicsTorqueResponse(t *testing.T) {
	// in zero gravity at rest, a unit torque accelerates the pendulum
	// by 1 / (m l^2)
	mass, length := 2.0, 0.5
	m := buildPendulum(t, mass, length)
	m.Gravity = r3.Vector{}
	d := model.NewData(m)

	ddq, err := ForwardDynamics(m, d, []float64{0.3}, []float64{0}, []float64{1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ddq[0], test.ShouldAlmostEqual, 1/(mass*length*length), 1e-10)
}

func TestForwardDynamicsSizeChecks(t *testing.T) {
	m := buildMixedTree(t)
	d := model.NewData(m)
	zero := make([]float64, m.NV())

	_, err := ForwardDynamics(m, d, []float64{0}, zero, zero)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = ForwardDynamics(m, d, m.Neutral(), zero[:2], zero)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = ForwardDynamics(m, d, m.Neutral(), zero, zero[:2])
	test.That(t, err, test.ShouldNotBeNil)
}
