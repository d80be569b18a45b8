/*
Package serialization writes and reads snapshots of a built transport
catalogue so that a later process can answer queries without rebuilding.

A snapshot holds the stops, buses and road distances of the catalogue, the
map render settings and, when routing was built, the routing settings, the
routing graph with its edge metadata and the precomputed route table.

The encoding is the protobuf wire format of the messages declared in
transport_catalogue.proto, written and parsed field by field with
protowire. Unknown fields are skipped, so a file written by a newer schema
still loads. Scalars are always written, also when they hold their zero
value.

Derived data (name indices, stop to bus sets, geometric bus lengths) is not
stored; Decode rebuilds it through catalogue.Restore.

# Usage

	err := serialization.ToFile(serialization.Snapshot{Catalogue: cat, Planner: planner}, "base.db")

	snap, err := serialization.FromFile("base.db")
	if err != nil {
	    // ErrMalformedSnapshot: rebuild from the source document
	}

A snapshot is read completely or not at all; there is no partial recovery.
*/
package serialization
