package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Symmetric3 is a symmetric 3x3 matrix stored without redundancy, used for
// rotational inertia.
type Symmetric3 struct {
	XX, YY, ZZ float64
	XY, XZ, YZ float64
}

// NewSymmetric3 builds a symmetric matrix from its six unique entries.
func NewSymmetric3(xx, yy, zz, xy, xz, yz float64) Symmetric3 {
	return Symmetric3{XX: xx, YY: yy, ZZ: zz, XY: xy, XZ: xz, YZ: yz}
}

// NewSymmetric3FromDiagonal builds a diagonal symmetric matrix.
func NewSymmetric3FromDiagonal(xx, yy, zz float64) Symmetric3 {
	return Symmetric3{XX: xx, YY: yy, ZZ: zz}
}

// At returns the matrix entry at the given row and column.
func (s Symmetric3) At(row, col int) float64 {
	switch {
	case row == col:
		return [3]float64{s.XX, s.YY, s.ZZ}[row]
	case row+col == 1:
		return s.XY
	case row+col == 2:
		return s.XZ
	default:
		return s.YZ
	}
}

// Add sums two symmetric matrices.
func (s Symmetric3) Add(other Symmetric3) Symmetric3 {
	return Symmetric3{
		XX: s.XX + other.XX, YY: s.YY + other.YY, ZZ: s.ZZ + other.ZZ,
		XY: s.XY + other.XY, XZ: s.XZ + other.XZ, YZ: s.YZ + other.YZ,
	}
}

// Scale multiplies every entry by a scalar.
func (s Symmetric3) Scale(k float64) Symmetric3 {
	return Symmetric3{
		XX: k * s.XX, YY: k * s.YY, ZZ: k * s.ZZ,
		XY: k * s.XY, XZ: k * s.XZ, YZ: k * s.YZ,
	}
}

// Apply multiplies the matrix by a vector.
func (s Symmetric3) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: s.XX*v.X + s.XY*v.Y + s.XZ*v.Z,
		Y: s.XY*v.X + s.YY*v.Y + s.YZ*v.Z,
		Z: s.XZ*v.X + s.YZ*v.Y + s.ZZ*v.Z,
	}
}

// Conjugate returns R * S * R^T, the matrix expressed in a rotated frame.
// Entry (i, j) of the result is row_i(R) . S . row_j(R).
func (s Symmetric3) Conjugate(rm RotationMatrix) Symmetric3 {
	return Symmetric3{
		XX: rm.Row(0).Dot(s.Apply(rm.Row(0))),
		YY: rm.Row(1).Dot(s.Apply(rm.Row(1))),
		ZZ: rm.Row(2).Dot(s.Apply(rm.Row(2))),
		XY: rm.Row(0).Dot(s.Apply(rm.Row(1))),
		XZ: rm.Row(0).Dot(s.Apply(rm.Row(2))),
		YZ: rm.Row(1).Dot(s.Apply(rm.Row(2))),
	}
}

// Matrix returns the full 3x3 form as a gonum symmetric matrix.
func (s Symmetric3) Matrix() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		s.XX, s.XY, s.XZ,
		s.XY, s.YY, s.YZ,
		s.XZ, s.YZ, s.ZZ,
	})
}

// spread returns |v|^2 * I - v v^T, the parallel-axis term for a unit mass
// displaced by v.
func spread(v r3.Vector) Symmetric3 {
	n2 := v.Dot(v)
	return Symmetric3{
		XX: n2 - v.X*v.X, YY: n2 - v.Y*v.Y, ZZ: n2 - v.Z*v.Z,
		XY: -v.X * v.Y, XZ: -v.X * v.Z, YZ: -v.Y * v.Z,
	}
}
