// Package dynamics implements the recursive algorithms of rigid body
// dynamics over a kinematic tree: forward kinematics, inverse dynamics
// via the recursive Newton-Euler algorithm, and forward dynamics via
// the articulated body algorithm.
//
// All algorithms run in a single sweep (or two) over the joints in
// topological order and cost O(n) in the number of joints. Results are
// written into the model.Data passed in; the returned slices alias the
// corresponding Data buffers.
package dynamics

import (
	"go.viam.com/dynamics/model"
	"go.viam.com/dynamics/spatialmath"
)

// ForwardKinematics computes the placement of every joint of the model
// in the world frame at configuration q, storing the results in
// d.Placements and d.LocalPlacements.
//
// v and a are optional velocity and acceleration vectors of size NV; if
// provided, the spatial velocity and acceleration of every joint are
// also computed, expressed in the local joint frame, and stored in
// d.Velocities and d.Accelerations. Accelerations here do not include
// the gravity field.
func ForwardKinematics(m *model.Model, d *model.Data, q, v, a []float64) error {
	if len(q) != m.NQ() {
		return model.NewIncorrectSizeError("q", m.NQ(), len(q))
	}
	if v != nil && len(v) != m.NV() {
		return model.NewIncorrectSizeError("v", m.NV(), len(v))
	}
	if a != nil && len(a) != m.NV() {
		return model.NewIncorrectSizeError("a", m.NV(), len(a))
	}

	d.Placements[model.WorldID] = spatialmath.NewSE3Identity()
	d.Velocities[model.WorldID] = spatialmath.Motion{}
	d.Accelerations[model.WorldID] = spatialmath.Motion{}

	qOffset, vOffset := 0, 0
	for jointID := 1; jointID < m.NJoints(); jointID++ {
		j := m.Joint(jointID)
		parentID := m.Parent(jointID)
		jointQ := q[qOffset : qOffset+j.ConfigurationSize()]

		liMi := m.JointPlacement(jointID).Compose(j.Placement(jointQ))
		d.LocalPlacements[jointID] = liMi
		d.Placements[jointID] = d.Placements[parentID].Compose(liMi)

		var vJ spatialmath.Motion
		if v != nil {
			vJ = j.Subspace(v[vOffset : vOffset+j.DoF()])
			d.Velocities[jointID] = vJ.Add(d.Velocities[parentID].TransformInv(liMi))
		}
		if a != nil {
			aJ := j.Subspace(a[vOffset : vOffset+j.DoF()]).Add(j.Bias())
			d.Accelerations[jointID] = aJ.
				Add(d.Accelerations[parentID].TransformInv(liMi)).
				Add(d.Velocities[jointID].Cross(vJ))
		}

		qOffset += j.ConfigurationSize()
		vOffset += j.DoF()
	}
	return nil
}

// UpdateFramePlacements refreshes the world placement of every frame of
// the model from the joint placements currently stored in d. It must be
// called after ForwardKinematics.
func UpdateFramePlacements(m *model.Model, d *model.Data) {
	for frameID := 1; frameID < m.NFrames(); frameID++ {
		f := m.Frame(frameID)
		d.FramePlacements[frameID] = d.Placements[f.ParentJoint].Compose(f.Placement)
	}
}
