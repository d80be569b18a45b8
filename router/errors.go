package router

import "errors"

var (
	// ErrInvalidConfiguration is returned for a non-positive bus velocity or a negative wait time.
	ErrInvalidConfiguration = errors.New("router: invalid routing settings")

	// ErrGraphMismatch is returned when restored tables do not describe the same graph.
	ErrGraphMismatch = errors.New("router: restored tables do not match")
)
