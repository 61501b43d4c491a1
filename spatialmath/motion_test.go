package spatialmath

import (
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestCrossAntisymmetric(t *testing.T) {
	randSrc := rand.New(rand.NewSource(31))
	for i := 0; i < 10; i++ {
		a := randomMotion(randSrc)
		b := randomMotion(randSrc)
		lhs := a.Cross(b)
		rhs := b.Cross(a).Scale(-1)
		vecAlmostEqual(t, lhs.Angular, rhs.Angular, 1e-12)
		vecAlmostEqual(t, lhs.Linear, rhs.Linear, 1e-12)
		self := a.Cross(a)
		vecAlmostEqual(t, self.Angular, Motion{}.Angular, 1e-12)
		vecAlmostEqual(t, self.Linear, Motion{}.Linear, 1e-12)
	}
}

func TestCrossForceDuality(t *testing.T) {
	// <v x m, f> = -<m, v x* f>
	randSrc := rand.New(rand.NewSource(32))
	for i := 0; i < 10; i++ {
		v := randomMotion(randSrc)
		m := randomMotion(randSrc)
		f := randomForce(randSrc)
		test.That(t, v.Cross(m).Dot(f), test.ShouldAlmostEqual, -m.Dot(v.CrossForce(f)), 1e-9)
	}
}

func TestCrossCommutesWithTransform(t *testing.T) {
	// the spatial cross product is equivariant under frame changes
	randSrc := rand.New(rand.NewSource(33))
	for i := 0; i < 10; i++ {
		tf := randomSE3(randSrc)
		a := randomMotion(randSrc)
		b := randomMotion(randSrc)
		lhs := a.Transform(tf).Cross(b.Transform(tf))
		rhs := a.Cross(b).Transform(tf)
		vecAlmostEqual(t, lhs.Angular, rhs.Angular, 1e-9)
		vecAlmostEqual(t, lhs.Linear, rhs.Linear, 1e-9)
	}
}

func TestMotionTransformRoundTrip(t *testing.T) {
	randSrc := rand.New(rand.NewSource(34))
	for i := 0; i < 10; i++ {
		tf := randomSE3(randSrc)
		m := randomMotion(randSrc)
		back := m.Transform(tf).TransformInv(tf)
		vecAlmostEqual(t, back.Angular, m.Angular, 1e-10)
		vecAlmostEqual(t, back.Linear, m.Linear, 1e-10)

		f := randomForce(randSrc)
		fBack := f.Transform(tf).TransformInv(tf)
		vecAlmostEqual(t, fBack.Angular, f.Angular, 1e-10)
		vecAlmostEqual(t, fBack.Linear, f.Linear, 1e-10)
	}
}

func TestMotionVectorRoundTrip(t *testing.T) {
	randSrc := rand.New(rand.NewSource(35))
	m := randomMotion(randSrc)
	back := MotionFromVector(m.Vector())
	test.That(t, back, test.ShouldResemble, m)

	f := randomForce(randSrc)
	fBack := ForceFromVector(f.Vector())
	test.That(t, fBack, test.ShouldResemble, f)
}
