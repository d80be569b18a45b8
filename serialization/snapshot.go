package serialization

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Snapshot is the persisted state of one base. RenderSettings and Planner
// are optional.
type Snapshot struct {
	Catalogue      *catalogue.Catalogue
	RenderSettings *renderer.Settings
	Planner        *router.Planner
}

// Encode serializes a snapshot into the protobuf wire layout described in
// the package documentation. The planner, when present, is written with its
// full route table so a reload answers routes without recomputing them.
//
// Example:
//
//	data, err := serialization.Encode(serialization.Snapshot{Catalogue: cat, Planner: planner})
//	if err != nil {
//	    // the snapshot has no catalogue
//	}
//	os.WriteFile("transport_catalogue.db", data, 0644)
//
// Thread safety: Safe for concurrent use as long as nothing mutates the
// catalogue while it is encoded.
func Encode(s Snapshot) ([]byte, error) {
	if s.Catalogue == nil {
		return nil, ErrNoCatalogue
	}
	return encodeSnapshot(s), nil
}

// Decode parses a snapshot and rebuilds the catalogue and routing state.
// Any inconsistency fails the whole decode with ErrMalformedSnapshot.
//
// Example:
//
//	data, _ := os.ReadFile("transport_catalogue.db")
//	snap, err := serialization.Decode(data)
//	if errors.Is(err, serialization.ErrMalformedSnapshot) {
//	    // rebuild the base with make_base
//	}
//	it, ok := snap.Planner.FindRoute("Tolstopaltsevo", "Rasskazovka")
//
// Thread safety: The returned catalogue and planner are safe for concurrent
// read access.
func Decode(data []byte) (Snapshot, error) {
	return decodeSnapshot(data)
}

// ToFile writes a snapshot to path, replacing an existing file.
// This is a convenience wrapper around Encode for direct file I/O.
//
// Example:
//
//	if err := serialization.ToFile(transport.Snapshot(), "transport_catalogue.db"); err != nil {
//	    // handle error
//	}
func ToFile(s Snapshot, path string) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	slog.Info("snapshot written", "file", path, "bytes", len(data),
		"stops", s.Catalogue.StopCount(), "buses", s.Catalogue.BusCount(), "routing", s.Planner != nil)
	return nil
}

// FromFile reads a snapshot written by ToFile.
// This is a convenience wrapper around Decode for direct file I/O.
//
// Example:
//
//	snap, err := serialization.FromFile("transport_catalogue.db")
//	if err != nil {
//	    // missing or corrupted base
//	}
func FromFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return Snapshot{}, err
	}
	slog.Info("snapshot loaded", "file", path, "bytes", len(data),
		"stops", s.Catalogue.StopCount(), "buses", s.Catalogue.BusCount(), "routing", s.Planner != nil)
	return s, nil
}

// ToWriter writes a snapshot to w.
func ToWriter(s Snapshot, w io.Writer) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// FromReader reads a snapshot from r until EOF.
func FromReader(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(data)
}
