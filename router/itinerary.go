package router

import "github.com/theoremus-urban-solutions/transport-catalogue/graph"

// LegKind tells a wait leg from a ride leg.
type LegKind int

const (
	// LegWait is time spent at a stop before boarding.
	LegWait LegKind = iota
	// LegBus is a ride over one or more consecutive stops of one bus.
	LegBus
)

func (k LegKind) String() string {
	if k == LegBus {
		return "Bus"
	}
	return "Wait"
}

// Leg is one step of an itinerary. Wait legs set StopName, ride legs set
// BusName and SpanCount.
type Leg struct {
	Kind      LegKind
	StopName  string
	BusName   string
	SpanCount int
	Time      float64
}

// Itinerary is a rider-facing route: legs in travel order and their total time in minutes.
type Itinerary struct {
	TotalTime float64
	Legs      []Leg
}

// EdgeLookup resolves edge ids to their metadata.
type EdgeLookup interface {
	Edge(id graph.EdgeID) EdgeInfo
}

// BuildItinerary maps every edge of route to a leg.
func BuildItinerary(edges EdgeLookup, route graph.RouteInfo[float64]) Itinerary {
	it := Itinerary{
		TotalTime: route.Weight,
		Legs:      make([]Leg, 0, len(route.Edges)),
	}
	for _, id := range route.Edges {
		info := edges.Edge(id)
		if info.SpanCount == 0 {
			it.Legs = append(it.Legs, Leg{Kind: LegWait, StopName: info.Name, Time: info.Weight})
			continue
		}
		it.Legs = append(it.Legs, Leg{Kind: LegBus, BusName: info.Name, SpanCount: info.SpanCount, Time: info.Weight})
	}
	return it
}
