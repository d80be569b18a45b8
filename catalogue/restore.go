package catalogue

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
)

// RestoredBus is a bus as stored in a snapshot: stops by id, no derived data.
type RestoredBus struct {
	ID        int
	Name      string
	Stops     []int
	RouteType domain.RouteType
}

// Restore rebuilds a catalogue from previously exported entities. Stop and
// bus ids must be dense and unique; they are kept as they are. Name indices,
// the stop to buses index and geometric distances are derived again.
func Restore(stops []domain.Stop, buses []RestoredBus, distances []RoadDistance) (*Catalogue, error) {
	c := New()

	c.stops = make([]domain.Stop, len(stops))
	c.busesThroughStop = make([][]string, len(stops))
	placed := make([]bool, len(stops))
	for _, s := range stops {
		if s.ID < 0 || s.ID >= len(stops) || placed[s.ID] {
			return nil, fmt.Errorf("%w: stop %q has id %d", ErrInvalidSnapshot, s.Name, s.ID)
		}
		if _, ok := c.stopIndex[s.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStop, s.Name)
		}
		placed[s.ID] = true
		c.stops[s.ID] = s
		c.stopIndex[s.Name] = s.ID
		c.busesThroughStop[s.ID] = []string{}
	}

	ordered := make([]*RestoredBus, len(buses))
	for i := range buses {
		b := &buses[i]
		if b.ID < 0 || b.ID >= len(buses) || ordered[b.ID] != nil {
			return nil, fmt.Errorf("%w: bus %q has id %d", ErrInvalidSnapshot, b.Name, b.ID)
		}
		ordered[b.ID] = b
	}
	for _, b := range ordered {
		if _, ok := c.busIndex[b.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBus, b.Name)
		}
		for _, stopID := range b.Stops {
			if stopID < 0 || stopID >= len(c.stops) {
				return nil, fmt.Errorf("%w: bus %q references stop id %d", ErrInvalidSnapshot, b.Name, stopID)
			}
		}
		c.insertBus(b.Name, append([]int(nil), b.Stops...), b.RouteType)
	}

	for _, d := range distances {
		if d.From < 0 || d.From >= len(c.stops) || d.To < 0 || d.To >= len(c.stops) {
			return nil, fmt.Errorf("%w: road distance %d -> %d", ErrInvalidSnapshot, d.From, d.To)
		}
		c.setRoadDistance(d.From, d.To, d.Length)
	}
	return c, nil
}
