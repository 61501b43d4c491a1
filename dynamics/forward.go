package dynamics

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
)

// ForwardDynamics computes the generalized accelerations produced by
// the torques tau at configuration q and velocity v, using the
// articulated body algorithm.
//
// The algorithm makes three passes over the tree. The first propagates
// velocities outward and seeds every joint with the inertia and bias
// force of its own body. The second sweeps inward, eliminating each
// joint's degree of freedom and folding its articulated inertia into
// the parent. The third propagates accelerations outward and recovers
// the joint accelerations. The result is stored in d.DDq and returned;
// d.Accelerations holds the spatial accelerations, including the
// gravity offset at the world entry.
func ForwardDynamics(m *model.Model, d *model.Data, q, v, tau []float64) ([]float64, error) {
	if len(q) != m.NQ() {
		return nil, model.NewIncorrectSizeError("q", m.NQ(), len(q))
	}
	if len(v) != m.NV() {
		return nil, model.NewIncorrectSizeError("v", m.NV(), len(v))
	}
	if len(tau) != m.NV() {
		return nil, model.NewIncorrectSizeError("tau", m.NV(), len(tau))
	}

	njoints := m.NJoints()
	d.Velocities[model.WorldID] = spatialmath.Motion{}

	qOffset, vOffset := 0, 0
	for jointID := 1; jointID < njoints; jointID++ {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)
		jointQ := q[qOffset : qOffset+j.ConfigurationSize()]
		jointV := v[vOffset : vOffset+j.DoF()]

		liMi := m.JointPlacement(jointID).Compose(j.Placement(jointQ))
		d.LocalPlacements[jointID] = liMi

		vJ := j.Subspace(jointV)
		d.Velocities[jointID] = vJ.Add(d.Velocities[parentID].TransformInv(liMi))
		d.BiasAccelerations[jointID] = j.Bias().Add(d.Velocities[jointID].Cross(vJ))

		inertia := m.Inertia(jointID)
		d.ArticulatedInertias[jointID].Copy(inertia.Matrix())
		d.ArticulatedBias[jointID] = d.Velocities[jointID].
			CrossForce(inertia.Apply(d.Velocities[jointID]))

		qOffset += j.ConfigurationSize()
		vOffset += j.DoF()
	}

	for jointID := njoints - 1; jointID >= 1; jointID-- {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)
		vOffset -= j.DoF()

		articulated := d.ArticulatedInertias[jointID]
		bias := d.ArticulatedBias[jointID]

		// eliminate the joint degree of freedom, leaving the apparent
		// inertia the parent sees through this joint
		var projected mat.Dense
		if j.DoF() > 0 {
			axis := j.Subspace([]float64{1}).Vector()
			u := d.JointU[jointID]
			u.MulVec(articulated, axis)
			dInv := 1 / mat.Dot(axis, u)
			torque := tau[vOffset] - mat.Dot(axis, bias.Vector())
			d.JointD[jointID] = 1 / dInv
			d.JointTorque[jointID] = torque

			var outer mat.Dense
			outer.Outer(dInv, u, u)
			projected.Sub(articulated, &outer)

			var biasVec mat.VecDense
			biasVec.MulVec(&projected, d.BiasAccelerations[jointID].Vector())
			biasVec.AddScaledVec(&biasVec, torque*dInv, u)
			bias = bias.Add(spatialmath.ForceFromVector(&biasVec))
		} else {
			projected.CloneFrom(articulated)
			var biasVec mat.VecDense
			biasVec.MulVec(&projected, d.BiasAccelerations[jointID].Vector())
			bias = bias.Add(spatialmath.ForceFromVector(&biasVec))
		}

		if parentID != model.WorldID {
			liMi := d.LocalPlacements[jointID]
			var half, toParent mat.Dense
			half.Mul(liMi.DualMatrix(), &projected)
			toParent.Mul(&half, liMi.InvActionMatrix())
			d.ArticulatedInertias[parentID].Add(d.ArticulatedInertias[parentID], &toParent)
			d.ArticulatedBias[parentID] = d.ArticulatedBias[parentID].
				Add(bias.Transform(liMi))
		}
	}

	d.Accelerations[model.WorldID] = spatialmath.Motion{Linear: m.Gravity.Mul(-1)}

	for jointID := 1; jointID < njoints; jointID++ {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)

		accel := d.Accelerations[parentID].TransformInv(d.LocalPlacements[jointID]).
			Add(d.BiasAccelerations[jointID])
		if j.DoF() > 0 {
			ddq := (d.JointTorque[jointID] - mat.Dot(d.JointU[jointID], accel.Vector())) / d.JointD[jointID]
			d.DDq[vOffset] = ddq
			accel = accel.Add(j.Subspace([]float64{ddq}))
			vOffset += j.DoF()
		}
		d.Accelerations[jointID] = accel
	}
	return d.DDq, nil
}
