package spec

import "errors"

var (
	// ErrInvalidInput is returned for malformed caller-supplied arguments:
	// a missing host interface or factory at session construction, or a
	// settings mapping whose reserved entries have the wrong shape.
	ErrInvalidInput = errors.New("invalid input")

	// ErrManagerNotRegistered is returned when a manager identifier is not
	// known to the session's ManagerFactory.
	ErrManagerNotRegistered = errors.New("manager not registered")
)
