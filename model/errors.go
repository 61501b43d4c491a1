package model

import "github.com/pkg/errors"

// NewParentJointDoesNotExistError returns an error indicating that a
// joint index does not name a joint of the model.
func NewParentJointDoesNotExistError(id int) error {
	return errors.Errorf("parent joint with id %d does not exist", id)
}

// NewJointNameAlreadyUsedError returns an error indicating that a joint
// name is already taken.
func NewJointNameAlreadyUsedError(name string, id int) error {
	return errors.Errorf("joint name %q is already used by joint with id %d", name, id)
}

// NewIncorrectSizeError returns an error indicating that a vector
// argument has the wrong number of entries for the model.
func NewIncorrectSizeError(name string, expected, got int) error {
	return errors.Errorf("incorrect size for argument %q: expected %d, got %d", name, expected, got)
}
