package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Inertia is the spatial inertia of a rigid body in compact form: its mass,
// the offset of its center of mass from the frame origin, and its rotational
// inertia about the center of mass.
type Inertia struct {
	Mass         float64
	CenterOfMass r3.Vector
	Moment       Symmetric3
}

// NewInertia creates a spatial inertia from its compact components.
func NewInertia(mass float64, com r3.Vector, moment Symmetric3) Inertia {
	return Inertia{Mass: mass, CenterOfMass: com, Moment: moment}
}

// NewInertiaFromEllipsoid returns the inertia of a solid ellipsoid of the given
// mass and semi-axis lengths, centered at the frame origin.
func NewInertiaFromEllipsoid(mass, x, y, z float64) (Inertia, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{{"mass", mass}, {"x", x}, {"y", y}, {"z", z}} {
		if p.value <= 0 {
			return Inertia{}, errors.Errorf("ellipsoid inertia parameter %q must be positive, got %f", p.name, p.value)
		}
	}
	return Inertia{
		Mass: mass,
		Moment: NewSymmetric3FromDiagonal(
			mass*(y*y+z*z)/5,
			mass*(x*x+z*z)/5,
			mass*(x*x+y*y)/5,
		),
	}, nil
}

// NewInertiaFromSphere returns the inertia of a solid sphere of the given mass
// and radius, centered at the frame origin.
func NewInertiaFromSphere(mass, radius float64) (Inertia, error) {
	return NewInertiaFromEllipsoid(mass, radius, radius, radius)
}

// Apply multiplies the inertia by a motion, yielding the spatial momentum
// (or, applied to an acceleration, the resulting force).
func (in Inertia) Apply(m Motion) Force {
	linear := m.Linear.Sub(in.CenterOfMass.Cross(m.Angular)).Mul(in.Mass)
	return Force{
		Angular: in.Moment.Apply(m.Angular).Add(in.CenterOfMass.Cross(linear)),
		Linear:  linear,
	}
}

// Add combines two inertias expressed in the same frame into the inertia of
// the composite body. Mass and momentum about the frame origin are preserved.
func (in Inertia) Add(other Inertia) Inertia {
	mass := in.Mass + other.Mass
	if mass == 0 {
		return Inertia{Moment: in.Moment.Add(other.Moment)}
	}
	com := in.CenterOfMass.Mul(in.Mass / mass).Add(other.CenterOfMass.Mul(other.Mass / mass))
	// parallel-axis correction for the two centers collapsing onto the shared one
	delta := in.CenterOfMass.Sub(other.CenterOfMass)
	moment := in.Moment.Add(other.Moment).Add(spread(delta).Scale(in.Mass * other.Mass / mass))
	return Inertia{Mass: mass, CenterOfMass: com, Moment: moment}
}

// Transport expresses the inertia in the parent frame of the given transform.
// Total mass and angular momentum about the moved frame are preserved.
func (in Inertia) Transport(tf SE3) Inertia {
	return Inertia{
		Mass:         in.Mass,
		CenterOfMass: tf.TransformPoint(in.CenterOfMass),
		Moment:       in.Moment.Conjugate(tf.R),
	}
}

// TransportInv expresses the inertia in the child frame of the given transform.
func (in Inertia) TransportInv(tf SE3) Inertia {
	return Inertia{
		Mass:         in.Mass,
		CenterOfMass: tf.R.ApplyTranspose(in.CenterOfMass.Sub(tf.T)),
		Moment:       in.Moment.Conjugate(tf.R.Transpose()),
	}
}

// Matrix materializes the inertia as the full 6x6 symmetric matrix acting on
// motion vectors laid out as (angular, linear):
//
//	| I_c - m [c]x [c]x    m [c]x |
//	| -m [c]x              m 1    |
func (in Inertia) Matrix() *mat.SymDense {
	c := in.CenterOfMass
	m := in.Mass
	top := in.Moment.Add(spread(c).Scale(m))
	sk := skew(c)
	out := mat.NewSymDense(6, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			out.SetSym(i, j, top.At(i, j))
			if i == j {
				out.SetSym(i+3, j+3, m)
			} else {
				out.SetSym(i+3, j+3, 0)
			}
		}
		for j := 0; j < 3; j++ {
			out.SetSym(i, j+3, m*sk.At(i, j))
		}
	}
	return out
}
