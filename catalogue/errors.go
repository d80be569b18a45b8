package catalogue

import "errors"

var (
	// ErrUnknownStop is returned when a bus or a road distance names a stop
	// that is not in the catalogue.
	ErrUnknownStop = errors.New("catalogue: unknown stop")

	// ErrDuplicateStop is returned when a stop name is inserted twice.
	ErrDuplicateStop = errors.New("catalogue: duplicate stop name")

	// ErrDuplicateBus is returned when a bus name is inserted twice.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus name")

	// ErrInvalidSnapshot is returned by Restore when ids are not dense or
	// a bus or distance references a stop id that does not exist.
	ErrInvalidSnapshot = errors.New("catalogue: invalid snapshot data")
)
