package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Motion is a 6D spatial motion vector (a twist): the angular and linear
// velocity of a rigid body, expressed in some frame.
type Motion struct {
	Angular r3.Vector
	Linear  r3.Vector
}

// NewMotionFromRotationAxis returns the unit motion rotating about the given axis.
func NewMotionFromRotationAxis(axis r3.Vector) Motion {
	return Motion{Angular: axis}
}

// NewMotionFromTranslationAxis returns the unit motion translating along the given axis.
func NewMotionFromTranslationAxis(axis r3.Vector) Motion {
	return Motion{Linear: axis}
}

// Add sums two motions expressed in the same frame.
func (m Motion) Add(other Motion) Motion {
	return Motion{
		Angular: m.Angular.Add(other.Angular),
		Linear:  m.Linear.Add(other.Linear),
	}
}

// Sub subtracts a motion expressed in the same frame.
func (m Motion) Sub(other Motion) Motion {
	return Motion{
		Angular: m.Angular.Sub(other.Angular),
		Linear:  m.Linear.Sub(other.Linear),
	}
}

// Scale multiplies the motion by a scalar.
func (m Motion) Scale(s float64) Motion {
	return Motion{Angular: m.Angular.Mul(s), Linear: m.Linear.Mul(s)}
}

// Cross is the spatial cross product of two motion vectors, the Lie bracket
// [m, other].
func (m Motion) Cross(other Motion) Motion {
	return Motion{
		Angular: m.Angular.Cross(other.Angular),
		Linear:  m.Angular.Cross(other.Linear).Add(m.Linear.Cross(other.Angular)),
	}
}

// CrossForce is the dual spatial cross product acting on a force vector,
// appearing in the momentum rate term v x* (I v).
func (m Motion) CrossForce(f Force) Force {
	return Force{
		Angular: m.Angular.Cross(f.Angular).Add(m.Linear.Cross(f.Linear)),
		Linear:  m.Angular.Cross(f.Linear),
	}
}

// Dot is the power pairing between a motion and a force.
func (m Motion) Dot(f Force) float64 {
	return m.Angular.Dot(f.Angular) + m.Linear.Dot(f.Linear)
}

// Transform expresses the motion in the parent frame of the given transform.
func (m Motion) Transform(tf SE3) Motion {
	angular := tf.R.Apply(m.Angular)
	return Motion{
		Angular: angular,
		Linear:  tf.R.Apply(m.Linear).Add(tf.T.Cross(angular)),
	}
}

// TransformInv expresses the motion in the child frame of the given transform.
func (m Motion) TransformInv(tf SE3) Motion {
	return Motion{
		Angular: tf.R.ApplyTranspose(m.Angular),
		Linear:  tf.R.ApplyTranspose(m.Linear.Sub(tf.T.Cross(m.Angular))),
	}
}

// Vector returns the motion as a 6-element gonum vector, angular part first.
func (m Motion) Vector() *mat.VecDense {
	return mat.NewVecDense(6, []float64{
		m.Angular.X, m.Angular.Y, m.Angular.Z,
		m.Linear.X, m.Linear.Y, m.Linear.Z,
	})
}

// MotionFromVector reads a 6-element gonum vector, angular part first,
// back into a Motion.
func MotionFromVector(v mat.Vector) Motion {
	return Motion{
		Angular: r3.Vector{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)},
		Linear:  r3.Vector{X: v.AtVec(3), Y: v.AtVec(4), Z: v.AtVec(5)},
	}
}
