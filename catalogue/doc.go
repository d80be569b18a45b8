/*
Package catalogue is the in-memory storage and index engine for stops and buses.

Stops and buses live in append-only arenas; the position in the arena is the
entity id. Name indices, the directional road-distance table and the
stop to buses index are all derived from the arenas and keyed by id.

# Building

Stops must be ingested before the buses that visit them:

	cat := catalogue.New()
	err := cat.AddStops(
	    []catalogue.StopInput{
	        {Name: "A", Coordinates: geo.Coordinates{Lat: 55.61, Lng: 37.20}},
	        {Name: "B", Coordinates: geo.Coordinates{Lat: 55.59, Lng: 37.21}},
	    },
	    []catalogue.StopDistances{
	        {From: "A", To: []catalogue.Neighbor{{Name: "B", Length: 3900}}},
	    },
	)
	err = cat.AddBus(catalogue.BusInput{Name: "750", Stops: []string{"A", "B"}, RouteType: domain.RouteForward})

A bus that names an unknown stop is rejected with ErrUnknownStop and leaves
the catalogue untouched.

# Querying

	info, ok := cat.GetBus("750")   // ok == false when the bus is unknown
	stop, ok := cat.GetStop("A")    // buses through A, sorted

# Rehydrating

Restore rebuilds a catalogue from decoded stops, buses and road distances
without privileged access. Geometric bus distances are recomputed from the
stop coordinates.

# Thread safety

Ingestion is single-writer. Once built, a catalogue is safe for concurrent
read access.
*/
package catalogue
