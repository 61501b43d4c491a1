package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// SE3 is a rigid transform: a rotation composed with a translation.
// It represents the placement of one frame relative to another, mapping
// coordinates in the child frame to the parent frame.
type SE3 struct {
	R RotationMatrix
	T r3.Vector
}

// NewSE3 creates a transform from a rotation and a translation.
func NewSE3(r RotationMatrix, t r3.Vector) SE3 {
	return SE3{R: r, T: t}
}

// NewSE3FromAxisAngle creates a transform rotating by theta about axis and
// translating by t.
func NewSE3FromAxisAngle(t, axis r3.Vector, theta float64) SE3 {
	return SE3{R: NewRotationMatrixFromAxisAngle(axis, theta), T: t}
}

// NewSE3Identity returns the identity transform.
func NewSE3Identity() SE3 {
	return SE3{R: NewRotationMatrix()}
}

// NewSE3FromTranslation returns a pure translation.
func NewSE3FromTranslation(t r3.Vector) SE3 {
	return SE3{R: NewRotationMatrix(), T: t}
}

// Compose chains two transforms: the result maps other's child frame coordinates
// all the way into tf's parent frame.
func (tf SE3) Compose(other SE3) SE3 {
	return SE3{
		R: tf.R.Mul(other.R),
		T: tf.R.Apply(other.T).Add(tf.T),
	}
}

// Inverse returns the transform mapping parent coordinates back to the child frame.
func (tf SE3) Inverse() SE3 {
	rInv := tf.R.Transpose()
	return SE3{R: rInv, T: rInv.Apply(tf.T).Mul(-1)}
}

// TransformPoint maps a point from the child frame to the parent frame.
func (tf SE3) TransformPoint(p r3.Vector) r3.Vector {
	return tf.R.Apply(p).Add(tf.T)
}

// ActionMatrix returns the 6x6 matrix acting on spatial motion vectors laid out
// as (angular, linear):
//
//	| R        0 |
//	| [t]x R   R |
func (tf SE3) ActionMatrix() *mat.Dense {
	out := mat.NewDense(6, 6, nil)
	skewT := skew(tf.T)
	fillBlock(out, 0, 0, tf.R)
	fillBlock(out, 3, 3, tf.R)
	fillBlock(out, 3, 0, skewT.Mul(tf.R))
	return out
}

// DualMatrix returns the 6x6 matrix acting on spatial force vectors laid out
// as (angular, linear); it is the inverse transpose of ActionMatrix:
//
//	| R   [t]x R |
//	| 0   R      |
func (tf SE3) DualMatrix() *mat.Dense {
	out := mat.NewDense(6, 6, nil)
	skewT := skew(tf.T)
	fillBlock(out, 0, 0, tf.R)
	fillBlock(out, 3, 3, tf.R)
	fillBlock(out, 0, 3, skewT.Mul(tf.R))
	return out
}

// InvActionMatrix returns the action matrix of the inverse transform without
// recomputing the inverse:
//
//	| R^T          0   |
//	| -R^T [t]x    R^T |
func (tf SE3) InvActionMatrix() *mat.Dense {
	out := mat.NewDense(6, 6, nil)
	rt := tf.R.Transpose()
	fillBlock(out, 0, 0, rt)
	fillBlock(out, 3, 3, rt)
	fillBlock(out, 3, 0, rt.Mul(skew(tf.T)).scale(-1))
	return out
}

func (tf SE3) String() string {
	return fmt.Sprintf("SE3(t=%v, R rows=%v|%v|%v)", tf.T, tf.R.Row(0), tf.R.Row(1), tf.R.Row(2))
}

// skew returns the skew-symmetric cross product matrix [v]x.
func skew(v r3.Vector) RotationMatrix {
	return RotationMatrix{[9]float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	}}
}

func (rm RotationMatrix) scale(s float64) RotationMatrix {
	for i := range rm.mat {
		rm.mat[i] *= s
	}
	return rm
}

func fillBlock(dst *mat.Dense, row, col int, rm RotationMatrix) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst.Set(row+i, col+j, rm.At(i, j))
		}
	}
}
