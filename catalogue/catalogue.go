package catalogue

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Catalogue stores stops and buses and answers structural queries. Stops and
// buses get dense ids in insertion order; every cross reference is an id.
//
// Example:
//
//	cat := catalogue.New()
//	err := cat.AddStops(
//	    []catalogue.StopInput{{Name: "A", Coordinates: a}, {Name: "B", Coordinates: b}},
//	    []catalogue.StopDistances{{From: "A", To: []catalogue.Neighbor{{Name: "B", Length: 1000}}}},
//	)
//	err = cat.AddBus(catalogue.BusInput{Name: "1", Stops: []string{"A", "B"}, RouteType: domain.RouteForward})
//	info, ok := cat.GetBus("1") // info.RouteLength == 2000
//
// Thread safety: Not safe for concurrent mutation. Once every stop and bus
// is added, concurrent reads are safe.
type Catalogue struct {
	stops []domain.Stop // stop id -> stop
	buses []domain.Bus  // bus id -> bus

	stopIndex map[string]int // stop name -> stop id
	busIndex  map[string]int // bus name -> bus id

	roadDistances    map[domain.StopPair]uint32 // (from, to) -> meters, as supplied
	busesThroughStop [][]string                 // stop id -> sorted unique bus names
}

// StopInput is a stop record of the input document.
type StopInput struct {
	Name        string
	Coordinates geo.Coordinates
}

// Neighbor is one road distance entry of a stop.
type Neighbor struct {
	Name   string
	Length uint32
}

// StopDistances lists the road distances from one stop to its neighbors.
type StopDistances struct {
	From string
	To   []Neighbor
}

// BusInput is a bus record of the input document.
type BusInput struct {
	Name      string
	Stops     []string
	RouteType domain.RouteType
}

// StopInfo answers a stop query.
type StopInfo struct {
	Name  string
	Buses []string // sorted, unique
}

// BusInfo answers a bus query.
type BusInfo struct {
	Name        string
	Stops       []string // stop names in the given order
	RouteLength uint32
	Curvature   float64
	RouteType   domain.RouteType
}

// StopCount is the number of stops a rider passes on one full trip,
// counting the return leg of forward routes.
func (b BusInfo) StopCount() int {
	if b.RouteType == domain.RouteForward && len(b.Stops) > 0 {
		return len(b.Stops)*2 - 1
	}
	return len(b.Stops)
}

// UniqueStopCount is the number of distinct stops on the route.
func (b BusInfo) UniqueStopCount() int {
	seen := make(map[string]struct{}, len(b.Stops))
	for _, name := range b.Stops {
		seen[name] = struct{}{}
	}
	return len(seen)
}

// RoadDistance is one entry of the road distance table.
type RoadDistance struct {
	From   int
	To     int
	Length uint32
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stops:            []domain.Stop{},
		buses:            []domain.Bus{},
		stopIndex:        map[string]int{},
		busIndex:         map[string]int{},
		roadDistances:    map[domain.StopPair]uint32{},
		busesThroughStop: [][]string{},
	}
}

// AddStop inserts a stop and returns its id.
func (c *Catalogue) AddStop(in StopInput) (int, error) {
	if _, ok := c.stopIndex[in.Name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateStop, in.Name)
	}
	id := len(c.stops)
	c.stops = append(c.stops, domain.Stop{ID: id, Name: in.Name, Coordinates: in.Coordinates})
	c.stopIndex[in.Name] = id
	c.busesThroughStop = append(c.busesThroughStop, []string{})
	return id, nil
}

// AddStops inserts every stop of the batch, then resolves the road distances
// against the freshly built name index. All stops named by distances must be
// part of the catalogue once the batch is inserted.
func (c *Catalogue) AddStops(stops []StopInput, distances []StopDistances) error {
	for _, s := range stops {
		if _, err := c.AddStop(s); err != nil {
			return err
		}
	}
	for _, d := range distances {
		from, ok := c.stopIndex[d.From]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStop, d.From)
		}
		for _, n := range d.To {
			to, ok := c.stopIndex[n.Name]
			if !ok {
				return fmt.Errorf("%w: %q (road distance from %q)", ErrUnknownStop, n.Name, d.From)
			}
			c.setRoadDistance(from, to, n.Length)
		}
	}
	return nil
}

// setRoadDistance keeps the first value supplied for a pair.
func (c *Catalogue) setRoadDistance(from, to int, length uint32) {
	key := domain.StopPair{From: from, To: to}
	if _, ok := c.roadDistances[key]; ok {
		return
	}
	c.roadDistances[key] = length
}

// AddBus resolves the stop names of the bus and inserts it. Nothing is
// retained when a stop name is unknown.
func (c *Catalogue) AddBus(in BusInput) error {
	if _, ok := c.busIndex[in.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBus, in.Name)
	}
	stopIDs := make([]int, 0, len(in.Stops))
	for _, name := range in.Stops {
		id, ok := c.stopIndex[name]
		if !ok {
			return fmt.Errorf("%w: %q on bus %q", ErrUnknownStop, name, in.Name)
		}
		stopIDs = append(stopIDs, id)
	}
	c.insertBus(in.Name, stopIDs, in.RouteType)
	return nil
}

// insertBus appends a bus whose stop ids are known to be valid and updates
// every derived index.
func (c *Catalogue) insertBus(name string, stopIDs []int, routeType domain.RouteType) {
	bus := domain.Bus{
		ID:        len(c.buses),
		Name:      name,
		Stops:     stopIDs,
		RouteType: routeType,
		Distance:  c.geometricDistance(stopIDs),
	}
	c.buses = append(c.buses, bus)
	c.busIndex[name] = bus.ID
	for _, stopID := range stopIDs {
		c.busesThroughStop[stopID] = insertSorted(c.busesThroughStop[stopID], name)
	}
}

func (c *Catalogue) geometricDistance(stopIDs []int) float64 {
	var distance float64
	for i := 1; i < len(stopIDs); i++ {
		distance += geo.ComputeDistance(c.stops[stopIDs[i-1]].Coordinates, c.stops[stopIDs[i]].Coordinates)
	}
	return distance
}

func insertSorted(set []string, name string) []string {
	i, found := slices.BinarySearch(set, name)
	if found {
		return set
	}
	return slices.Insert(set, i, name)
}

// GetStop returns the buses through the named stop, or false if the stop is unknown.
func (c *Catalogue) GetStop(name string) (StopInfo, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return StopInfo{}, false
	}
	buses := make([]string, len(c.busesThroughStop[id]))
	copy(buses, c.busesThroughStop[id])
	return StopInfo{Name: c.stops[id].Name, Buses: buses}, true
}

// GetBus returns the route statistics of the named bus, or false if the bus is unknown.
func (c *Catalogue) GetBus(name string) (BusInfo, bool) {
	id, ok := c.busIndex[name]
	if !ok {
		return BusInfo{}, false
	}
	bus := c.buses[id]

	names := make([]string, 0, len(bus.Stops))
	for _, stopID := range bus.Stops {
		names = append(names, c.stops[stopID].Name)
	}

	var length uint32
	var curvature float64
	switch bus.RouteType {
	case domain.RouteCycle:
		length = c.cycleLength(bus.Stops)
		if bus.Distance > 0 {
			curvature = float64(length) / bus.Distance
		}
	default:
		length = c.forwardLength(bus.Stops)
		if bus.Distance > 0 {
			// both legs are summed into length, Distance is one way
			curvature = float64(length/2) / bus.Distance
		}
	}

	return BusInfo{
		Name:        bus.Name,
		Stops:       names,
		RouteLength: length,
		Curvature:   curvature,
		RouteType:   bus.RouteType,
	}, true
}

func (c *Catalogue) cycleLength(stops []int) uint32 {
	var length uint32
	for i := 0; i+1 < len(stops); i++ {
		length += c.roadDistance(stops[i], stops[i+1])
	}
	return length
}

// forwardLength walks both ends inward, summing one outbound and one return
// hop per position. The turnaround adds nothing.
func (c *Catalogue) forwardLength(stops []int) uint32 {
	var length uint32
	n := len(stops)
	for i := 0; i+1 < n; i++ {
		r := n - 1 - i
		length += c.roadDistance(stops[i], stops[i+1])
		length += c.roadDistance(stops[r], stops[r-1])
	}
	return length
}

// CheckRouteLength returns the road distance from a to b. The (b, a) entry
// is used when (a, b) is absent; 0 when neither is known.
func (c *Catalogue) CheckRouteLength(a, b string) uint32 {
	from, ok := c.stopIndex[a]
	if !ok {
		return 0
	}
	to, ok := c.stopIndex[b]
	if !ok {
		return 0
	}
	return c.roadDistance(from, to)
}

// RoadDistanceByID is CheckRouteLength over stop ids.
func (c *Catalogue) RoadDistanceByID(from, to int) uint32 {
	return c.roadDistance(from, to)
}

func (c *Catalogue) roadDistance(from, to int) uint32 {
	key := domain.StopPair{From: from, To: to}
	if length, ok := c.roadDistances[key]; ok {
		return length
	}
	if length, ok := c.roadDistances[key.Reverse()]; ok {
		return length
	}
	return 0
}

// Stop resolves a stop name to the stored stop.
func (c *Catalogue) Stop(name string) (domain.Stop, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return domain.Stop{}, false
	}
	return c.stops[id], true
}

// StopByID returns the stop with the given id. The id must be in range.
func (c *Catalogue) StopByID(id int) domain.Stop {
	return c.stops[id]
}

// Stops returns every stop in id order. The slice must not be modified.
func (c *Catalogue) Stops() []domain.Stop { return c.stops }

// Buses returns every bus in id order. The slice must not be modified.
func (c *Catalogue) Buses() []domain.Bus { return c.buses }

// StopCount returns the number of stops.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses.
func (c *Catalogue) BusCount() int { return len(c.buses) }

// RoadDistances returns the road distance table ordered by (from, to).
func (c *Catalogue) RoadDistances() []RoadDistance {
	out := make([]RoadDistance, 0, len(c.roadDistances))
	for pair, length := range c.roadDistances {
		out = append(out, RoadDistance{From: pair.From, To: pair.To, Length: length})
	}
	slices.SortFunc(out, func(a, b RoadDistance) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})
	return out
}
