// Package spatialmath defines the spatial algebra underlying rigid-body dynamics:
// SE(3) rigid transforms, 6D spatial motion and force vectors, and spatial inertias.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix stored in row major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix returns the identity rotation.
func NewRotationMatrix() RotationMatrix {
	return RotationMatrix{[9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewRotationMatrixFromQuat converts a unit quaternion to a rotation matrix.
func NewRotationMatrixFromQuat(q quat.Number) RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return RotationMatrix{[9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}}
}

// NewRotationMatrixFromAxisAngle builds the rotation of `theta` radians about `axis`.
// The axis is normalized; a zero axis yields the identity.
func NewRotationMatrixFromAxisAngle(axis r3.Vector, theta float64) RotationMatrix {
	norm := axis.Norm()
	if norm == 0 {
		return NewRotationMatrix()
	}
	axis = axis.Mul(1 / norm)
	sinA := math.Sin(theta / 2)
	return NewRotationMatrixFromQuat(quat.Number{
		Real: math.Cos(theta / 2),
		Imag: axis.X * sinA,
		Jmag: axis.Y * sinA,
		Kmag: axis.Z * sinA,
	})
}

// NewRotationMatrixFromEuler builds a rotation from URDF-style roll/pitch/yaw,
// applied as Rz(yaw) * Ry(pitch) * Rx(roll).
func NewRotationMatrixFromEuler(roll, pitch, yaw float64) RotationMatrix {
	rx := NewRotationMatrixFromAxisAngle(r3.Vector{X: 1}, roll)
	ry := NewRotationMatrixFromAxisAngle(r3.Vector{Y: 1}, pitch)
	rz := NewRotationMatrixFromAxisAngle(r3.Vector{Z: 1}, yaw)
	return rz.Mul(ry).Mul(rx)
}

// At returns the matrix entry at the given row and column.
func (rm RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a matrix row as a vector.
func (rm RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Mul composes two rotations, applying other first.
func (rm RotationMatrix) Mul(other RotationMatrix) RotationMatrix {
	var out RotationMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.mat[3*i+j] = rm.mat[3*i]*other.mat[j] +
				rm.mat[3*i+1]*other.mat[3+j] +
				rm.mat[3*i+2]*other.mat[6+j]
		}
	}
	return out
}

// Transpose returns the inverse rotation.
func (rm RotationMatrix) Transpose() RotationMatrix {
	m := rm.mat
	return RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Apply rotates the given vector.
func (rm RotationMatrix) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// ApplyTranspose rotates the given vector by the inverse rotation without
// materializing the transpose.
func (rm RotationMatrix) ApplyTranspose(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[3]*v.Y + rm.mat[6]*v.Z,
		Y: rm.mat[1]*v.X + rm.mat[4]*v.Y + rm.mat[7]*v.Z,
		Z: rm.mat[2]*v.X + rm.mat[5]*v.Y + rm.mat[8]*v.Z,
	}
}

// Quaternion converts the rotation matrix to a unit quaternion using Shepperd's method.
func (rm RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	tr := m[0] + m[4] + m[8]
	var q quat.Number
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1.0)
		q = quat.Number{Real: 0.25 / s, Imag: (m[7] - m[5]) * s, Jmag: (m[2] - m[6]) * s, Kmag: (m[3] - m[1]) * s}
	case m[0] > m[4] && m[0] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		q = quat.Number{Real: (m[7] - m[5]) / s, Imag: 0.25 * s, Jmag: (m[1] + m[3]) / s, Kmag: (m[2] + m[6]) / s}
	case m[4] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		q = quat.Number{Real: (m[2] - m[6]) / s, Imag: (m[1] + m[3]) / s, Jmag: 0.25 * s, Kmag: (m[5] + m[7]) / s}
	default:
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		q = quat.Number{Real: (m[3] - m[1]) / s, Imag: (m[2] + m[6]) / s, Jmag: (m[5] + m[7]) / s, Kmag: 0.25 * s}
	}
	return q
}

// Angle returns the rotation angle in radians, in [0, pi].
func (rm RotationMatrix) Angle() float64 {
	tr := rm.mat[0] + rm.mat[4] + rm.mat[8]
	// clamp against floating drift before acos
	c := (tr - 1) / 2
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Matrix returns the rotation as a dense 3x3 gonum matrix in row major order.
func (rm RotationMatrix) Matrix() *mat.Dense {
	out := make([]float64, 9)
	copy(out, rm.mat[:])
	return mat.NewDense(3, 3, out)
}

// OrthonormalError returns the largest absolute deviation of R^T * R from the
// identity, a cheap validity probe for debug checks.
func (rm RotationMatrix) OrthonormalError() float64 {
	rtr := rm.Transpose().Mul(rm)
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if d := math.Abs(rtr.At(i, j) - want); d > worst {
				worst = d
			}
		}
	}
	return worst
}
