package graph

import "fmt"

// RouteInternalData is the best known route between an ordered vertex pair.
// PrevEdge is the last edge of the route; HasPrevEdge is false for the empty
// route of a vertex to itself.
type RouteInternalData[W Weight] struct {
	Reachable   bool
	Weight      W
	PrevEdge    EdgeID
	HasPrevEdge bool
}

// RouteInfo is a path answer: its edges in travel order and their total weight.
type RouteInfo[W Weight] struct {
	Weight W
	Edges  []EdgeID
}

// Router answers cheapest-path queries over a graph from a table computed
// once for every vertex pair.
type Router[W Weight] struct {
	graph  *DirectedWeightedGraph[W]
	routes [][]RouteInternalData[W]
}

// NewRouter precomputes the route table of g. Loop order is fixed
// (through -> from -> to) and only strict improvements replace a route, so
// equal-weight ties resolve the same way on every run.
func NewRouter[W Weight](g *DirectedWeightedGraph[W]) *Router[W] {
	n := g.VertexCount()
	r := &Router[W]{
		graph:  g,
		routes: make([][]RouteInternalData[W], n),
	}
	for v := range r.routes {
		r.routes[v] = make([]RouteInternalData[W], n)
	}
	r.initializeDirectRoutes()
	for through := 0; through < n; through++ {
		r.relaxThrough(through)
	}
	return r
}

// RestoreRouter attaches a previously computed route table to g. The table
// is rejected with ErrRoutesShape or ErrEdgeOutOfRange unless every route in
// it walks back to its source through edges of g.
func RestoreRouter[W Weight](g *DirectedWeightedGraph[W], routes [][]RouteInternalData[W]) (*Router[W], error) {
	n := g.VertexCount()
	if len(routes) != n {
		return nil, fmt.Errorf("%d rows for %d vertices: %w", len(routes), n, ErrRoutesShape)
	}
	for from, row := range routes {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries for %d vertices: %w", from, len(row), n, ErrRoutesShape)
		}
		if err := checkRow(g, from, row); err != nil {
			return nil, err
		}
	}
	return &Router[W]{graph: g, routes: routes}, nil
}

// Walk states of checkRow.
const (
	unchecked uint8 = iota
	onWalk
	endsAtSource
)

// checkRow verifies that every reachable route of one table row can be
// walked back edge by edge to from, the way BuildRoute walks it. Each entry
// must end with an edge into its own vertex, and the walk must neither loop
// nor pass an unreachable vertex.
func checkRow[W Weight](g *DirectedWeightedGraph[W], from VertexID, row []RouteInternalData[W]) error {
	state := make([]uint8, len(row))
	for to := range row {
		if !row[to].Reachable {
			continue
		}
		var walk []VertexID
		v := to
		for state[v] == unchecked {
			data := row[v]
			if !data.Reachable {
				return fmt.Errorf("route %d -> %d passes unreachable vertex %d: %w", from, to, v, ErrRoutesShape)
			}
			if !data.HasPrevEdge {
				if v != from {
					return fmt.Errorf("route %d -> %d has no last edge: %w", from, v, ErrRoutesShape)
				}
				break
			}
			if data.PrevEdge < 0 || data.PrevEdge >= g.EdgeCount() {
				return fmt.Errorf("route %d -> %d ends with edge %d: %w", from, v, data.PrevEdge, ErrEdgeOutOfRange)
			}
			e := g.Edge(data.PrevEdge)
			if e.To != v {
				return fmt.Errorf("route %d -> %d ends with edge %d into vertex %d: %w", from, v, data.PrevEdge, e.To, ErrRoutesShape)
			}
			state[v] = onWalk
			walk = append(walk, v)
			v = e.From
		}
		if state[v] == onWalk {
			return fmt.Errorf("route %d -> %d loops through vertex %d: %w", from, to, v, ErrRoutesShape)
		}
		state[v] = endsAtSource
		for _, w := range walk {
			state[w] = endsAtSource
		}
	}
	return nil
}

func (r *Router[W]) initializeDirectRoutes() {
	for v := range r.routes {
		r.routes[v][v] = RouteInternalData[W]{Reachable: true}
		for _, id := range r.graph.IncidentEdges(v) {
			e := r.graph.Edge(id)
			cur := &r.routes[v][e.To]
			if !cur.Reachable || e.Weight < cur.Weight {
				*cur = RouteInternalData[W]{Reachable: true, Weight: e.Weight, PrevEdge: id, HasPrevEdge: true}
			}
		}
	}
}

func (r *Router[W]) relaxThrough(through VertexID) {
	for from := range r.routes {
		head := r.routes[from][through]
		if !head.Reachable {
			continue
		}
		for to := range r.routes {
			tail := r.routes[through][to]
			if !tail.Reachable {
				continue
			}
			candidate := head.Weight + tail.Weight
			cur := &r.routes[from][to]
			if cur.Reachable && !(candidate < cur.Weight) {
				continue
			}
			prev, hasPrev := tail.PrevEdge, tail.HasPrevEdge
			if !hasPrev {
				prev, hasPrev = head.PrevEdge, head.HasPrevEdge
			}
			*cur = RouteInternalData[W]{Reachable: true, Weight: candidate, PrevEdge: prev, HasPrevEdge: hasPrev}
		}
	}
}

// BuildRoute returns the cheapest path from -> to, or false if to is not
// reachable or either vertex is out of range. A vertex routed to itself
// yields zero edges and zero weight.
func (r *Router[W]) BuildRoute(from, to VertexID) (RouteInfo[W], bool) {
	n := len(r.routes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return RouteInfo[W]{}, false
	}
	data := r.routes[from][to]
	if !data.Reachable {
		return RouteInfo[W]{}, false
	}
	edges := []EdgeID{}
	for cur := data; cur.HasPrevEdge; {
		edges = append(edges, cur.PrevEdge)
		cur = r.routes[from][r.graph.Edge(cur.PrevEdge).From]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return RouteInfo[W]{Weight: data.Weight, Edges: edges}, true
}

// Graph returns the graph the router was built over.
func (r *Router[W]) Graph() *DirectedWeightedGraph[W] { return r.graph }

// Routes exposes the route table for persistence. It must not be modified.
func (r *Router[W]) Routes() [][]RouteInternalData[W] { return r.routes }
