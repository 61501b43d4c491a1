package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Force is a 6D spatial force vector (a wrench): a torque and a linear force,
// expressed in some frame. It is dual to Motion under the power pairing.
type Force struct {
	Angular r3.Vector // torque
	Linear  r3.Vector // force
}

// Add sums two forces expressed in the same frame.
func (f Force) Add(other Force) Force {
	return Force{
		Angular: f.Angular.Add(other.Angular),
		Linear:  f.Linear.Add(other.Linear),
	}
}

// Sub subtracts a force expressed in the same frame.
func (f Force) Sub(other Force) Force {
	return Force{
		Angular: f.Angular.Sub(other.Angular),
		Linear:  f.Linear.Sub(other.Linear),
	}
}

// Scale multiplies the force by a scalar.
func (f Force) Scale(s float64) Force {
	return Force{Angular: f.Angular.Mul(s), Linear: f.Linear.Mul(s)}
}

// Transform expresses the force in the parent frame of the given transform.
// Forces transform with the dual (inverse transpose) of the motion action.
func (f Force) Transform(tf SE3) Force {
	linear := tf.R.Apply(f.Linear)
	return Force{
		Angular: tf.R.Apply(f.Angular).Add(tf.T.Cross(linear)),
		Linear:  linear,
	}
}

// TransformInv expresses the force in the child frame of the given transform.
func (f Force) TransformInv(tf SE3) Force {
	return Force{
		Angular: tf.R.ApplyTranspose(f.Angular.Sub(tf.T.Cross(f.Linear))),
		Linear:  tf.R.ApplyTranspose(f.Linear),
	}
}

// Vector returns the force as a 6-element gonum vector, angular part first.
func (f Force) Vector() *mat.VecDense {
	return mat.NewVecDense(6, []float64{
		f.Angular.X, f.Angular.Y, f.Angular.Z,
		f.Linear.X, f.Linear.Y, f.Linear.Z,
	})
}

// ForceFromVector reads a 6-element gonum vector, angular part first,
// back into a Force.
func ForceFromVector(v mat.Vector) Force {
	return Force{
		Angular: r3.Vector{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)},
		Linear:  r3.Vector{X: v.AtVec(3), Y: v.AtVec(4), Z: v.AtVec(5)},
	}
}
