package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrNoRoutine signals that the user has no routine and no legacy data.
	ErrNoRoutine = errors.New("no routine")
	// ErrRoutineExists signals a second routine creation for the same user.
	ErrRoutineExists = errors.New("routine already exists")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
