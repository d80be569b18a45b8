package requests

import "errors"

var (
	// ErrNoSnapshotFile is returned when neither the document nor the
	// options name a snapshot file.
	ErrNoSnapshotFile = errors.New("requests: no snapshot file configured")

	// ErrUnknownRequestType is returned for a base or stat request type
	// other than Stop, Bus, Map or Route.
	ErrUnknownRequestType = errors.New("requests: unknown request type")

	// ErrNoRoutingSettings is returned when a route is requested from a
	// base that has neither a built router nor routing settings.
	ErrNoRoutingSettings = errors.New("requests: no routing settings")

	// ErrInvalidDocument is returned for a document that is not valid JSON
	// or has values of the wrong shape.
	ErrInvalidDocument = errors.New("requests: invalid request document")
)
