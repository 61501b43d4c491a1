package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotationAxisAngle(t *testing.T) {
	rm := NewRotationMatrixFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	vecAlmostEqual(t, rm.Apply(r3.Vector{X: 1}), r3.Vector{Y: 1}, 1e-12)
	test.That(t, rm.Angle(), test.ShouldAlmostEqual, math.Pi/2)

	// axis magnitude is irrelevant
	rm2 := NewRotationMatrixFromAxisAngle(r3.Vector{Z: 10}, math.Pi/2)
	vecAlmostEqual(t, rm2.Apply(r3.Vector{X: 1}), rm.Apply(r3.Vector{X: 1}), 1e-12)

	// zero axis yields the identity
	rm3 := NewRotationMatrixFromAxisAngle(r3.Vector{}, 1.2)
	test.That(t, rm3.Angle(), test.ShouldAlmostEqual, 0)
}

func TestRotationQuaternionRoundTrip(t *testing.T) {
	randSrc := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		axis := r3.Vector{X: randSrc.NormFloat64(), Y: randSrc.NormFloat64(), Z: randSrc.NormFloat64()}
		theta := randSrc.Float64()*2*math.Pi - math.Pi
		rm := NewRotationMatrixFromAxisAngle(axis, theta)
		back := NewRotationMatrixFromQuat(rm.Quaternion())
		for r := 0; r < 3; r++ {
			vecAlmostEqual(t, back.Row(r), rm.Row(r), 1e-10)
		}
	}
}

func TestRotationOrthonormal(t *testing.T) {
	randSrc := rand.New(rand.NewSource(12))
	for i := 0; i < 25; i++ {
		axis := r3.Vector{X: randSrc.NormFloat64(), Y: randSrc.NormFloat64(), Z: randSrc.NormFloat64()}
		rm := NewRotationMatrixFromAxisAngle(axis, randSrc.NormFloat64())
		test.That(t, rm.OrthonormalError(), test.ShouldBeLessThan, 1e-12)
	}
}

func TestRotationEuler(t *testing.T) {
	// pure yaw rotates x onto y
	rm := NewRotationMatrixFromEuler(0, 0, math.Pi/2)
	vecAlmostEqual(t, rm.Apply(r3.Vector{X: 1}), r3.Vector{Y: 1}, 1e-12)

	// pure roll rotates y onto z
	rm = NewRotationMatrixFromEuler(math.Pi/2, 0, 0)
	vecAlmostEqual(t, rm.Apply(r3.Vector{Y: 1}), r3.Vector{Z: 1}, 1e-12)

	// extrinsic x-y-z order: roll applied first
	roll, pitch, yaw := 0.3, -0.4, 0.5
	want := NewRotationMatrixFromAxisAngle(r3.Vector{Z: 1}, yaw).
		Mul(NewRotationMatrixFromAxisAngle(r3.Vector{Y: 1}, pitch)).
		Mul(NewRotationMatrixFromAxisAngle(r3.Vector{X: 1}, roll))
	got := NewRotationMatrixFromEuler(roll, pitch, yaw)
	for r := 0; r < 3; r++ {
		vecAlmostEqual(t, got.Row(r), want.Row(r), 1e-12)
	}
}

func TestRotationApplyTranspose(t *testing.T) {
	randSrc := rand.New(rand.NewSource(13))
	rm := NewRotationMatrixFromAxisAngle(r3.Vector{X: 1, Y: 2, Z: -1}, 0.8)
	for i := 0; i < 10; i++ {
		v := r3.Vector{X: randSrc.NormFloat64(), Y: randSrc.NormFloat64(), Z: randSrc.NormFloat64()}
		vecAlmostEqual(t, rm.ApplyTranspose(rm.Apply(v)), v, 1e-12)
		vecAlmostEqual(t, rm.ApplyTranspose(v), rm.Transpose().Apply(v), 1e-15)
	}
}
