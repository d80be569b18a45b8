package domain

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// RouteType tells how a bus traverses its stop sequence.
type RouteType int

const (
	// RouteForward buses travel the sequence outbound and return along the same stops in reverse.
	RouteForward RouteType = iota
	// RouteCycle buses travel a sequence that is already a closed loop.
	RouteCycle
)

func (t RouteType) String() string {
	switch t {
	case RouteCycle:
		return "CYCLE"
	case RouteForward:
		return "FORWARD"
	default:
		return fmt.Sprintf("RouteType(%d)", int(t))
	}
}

// RouteTypeFromRoundtrip maps the is_roundtrip flag of the input document.
func RouteTypeFromRoundtrip(roundtrip bool) RouteType {
	if roundtrip {
		return RouteCycle
	}
	return RouteForward
}

// Stop is a named geographic point a bus can halt at.
type Stop struct {
	ID          int
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named ordered sequence of stops.
type Bus struct {
	ID        int
	Name      string
	Stops     []int // stop ids in route order, duplicates allowed
	RouteType RouteType
	// Distance is the geometric length of the given stop sequence in meters.
	Distance float64
}

// StopPair is an ordered (from, to) pair of stop ids.
type StopPair struct {
	From int
	To   int
}

// Reverse returns the pair with its ends swapped.
func (p StopPair) Reverse() StopPair {
	return StopPair{From: p.To, To: p.From}
}
