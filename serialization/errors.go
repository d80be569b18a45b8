package serialization

import "errors"

var (
	// ErrMalformedSnapshot is returned when snapshot bytes are truncated,
	// corrupt or describe inconsistent state.
	ErrMalformedSnapshot = errors.New("serialization: malformed snapshot")

	// ErrNoCatalogue is returned when encoding a snapshot without a catalogue.
	ErrNoCatalogue = errors.New("serialization: snapshot has no catalogue")
)
