package router

import "github.com/theoremus-urban-solutions/transport-catalogue/graph"

// Planner composes the builder and the shortest-path engine into stop to stop queries.
//
// Example:
//
//	b, err := router.NewBuilder(cat, router.Settings{BusVelocity: 40, BusWaitTime: 6})
//	if err != nil {
//	    // zero or negative velocity, negative wait time
//	}
//	p := router.NewPlanner(b)
//	it, ok := p.FindRoute("Biryulyovo Zapadnoye", "Universam")
//	for _, leg := range it.Legs {
//	    fmt.Println(leg.Kind, leg.StopName, leg.BusName, leg.SpanCount, leg.Time)
//	}
//
// Thread safety: Safe for concurrent use once constructed; the route table
// is never modified after NewPlanner or RestorePlanner returns.
type Planner struct {
	builder *Builder
	router  *graph.Router[float64]
}

// NewPlanner precomputes all routes over the builder's graph. The cost is
// cubic in the number of stops, so build it once per base.
func NewPlanner(b *Builder) *Planner {
	return &Planner{builder: b, router: graph.NewRouter(b.Graph())}
}

// RestorePlanner reuses a previously computed route table.
func RestorePlanner(b *Builder, routes [][]graph.RouteInternalData[float64]) (*Planner, error) {
	r, err := graph.RestoreRouter(b.Graph(), routes)
	if err != nil {
		return nil, err
	}
	return &Planner{builder: b, router: r}, nil
}

// FindRoute returns the fastest itinerary between two stops. It reports
// false when a stop is unknown or no route exists. A stop routed to itself
// yields an itinerary with no legs.
func (p *Planner) FindRoute(from, to string) (Itinerary, bool) {
	fromVertex, ok := p.builder.StopVertex(from)
	if !ok {
		return Itinerary{}, false
	}
	toVertex, ok := p.builder.StopVertex(to)
	if !ok {
		return Itinerary{}, false
	}
	route, ok := p.router.BuildRoute(fromVertex, toVertex)
	if !ok {
		return Itinerary{}, false
	}
	return BuildItinerary(p.builder, route), true
}

func (p *Planner) Builder() *Builder { return p.builder }

func (p *Planner) Router() *graph.Router[float64] { return p.router }
