package dynamics

import (
	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
)

// InverseDynamics computes the generalized torques that produce the
// acceleration a at configuration q and velocity v, using the recursive
// Newton-Euler algorithm.
//
// The forward pass propagates velocities and gravity-biased
// accelerations from the world out to the leaves; the backward pass
// accumulates the spatial forces each joint must transmit and projects
// them onto the joint axes. The torques are stored in d.Tau and
// returned; d.LocalPlacements, d.Velocities, d.Accelerations, d.Momenta
// and d.Forces hold the intermediate quantities afterwards.
func InverseDynamics(m *model.Model, d *model.Data, q, v, a []float64) ([]float64, error) {
	if len(q) != m.NQ() {
		return nil, model.NewIncorrectSizeError("q", m.NQ(), len(q))
	}
	if len(v) != m.NV() {
		return nil, model.NewIncorrectSizeError("v", m.NV(), len(v))
	}
	if len(a) != m.NV() {
		return nil, model.NewIncorrectSizeError("a", m.NV(), len(a))
	}

	d.Velocities[model.WorldID] = spatialmath.Motion{}
	// the world acceleration carries the gravity field so the
	// recursion folds gravity into every joint force
	d.Accelerations[model.WorldID] = spatialmath.Motion{Linear: m.Gravity.Mul(-1)}

	qOffset, vOffset := 0, 0
	for jointID := 1; jointID < m.NJoints(); jointID++ {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)
		jointQ := q[qOffset : qOffset+j.ConfigurationSize()]
		jointV := v[vOffset : vOffset+j.DoF()]
		jointA := a[vOffset : vOffset+j.DoF()]

		liMi := m.JointPlacement(jointID).Compose(j.Placement(jointQ))
		d.LocalPlacements[jointID] = liMi

		vJ := j.Subspace(jointV)
		d.Velocities[jointID] = vJ.Add(d.Velocities[parentID].TransformInv(liMi))

		d.Accelerations[jointID] = j.Subspace(jointA).Add(j.Bias()).
			Add(d.Accelerations[parentID].TransformInv(liMi)).
			Add(d.Velocities[jointID].Cross(vJ))

		inertia := m.Inertia(jointID)
		d.Momenta[jointID] = inertia.Apply(d.Velocities[jointID])
		d.Forces[jointID] = inertia.Apply(d.Accelerations[jointID]).
			Add(d.Velocities[jointID].CrossForce(d.Momenta[jointID]))

		qOffset += j.ConfigurationSize()
		vOffset += j.DoF()
	}

	for jointID := m.NJoints() - 1; jointID >= 1; jointID-- {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)
		vOffset -= j.DoF()

		copy(d.Tau[vOffset:vOffset+j.DoF()], j.SubspaceDual(d.Forces[jointID]))

		if parentID != model.WorldID {
			d.Forces[parentID] = d.Forces[parentID].
				Add(d.Forces[jointID].Transform(d.LocalPlacements[jointID]))
		}
	}
	return d.Tau, nil
}
