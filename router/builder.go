package router

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

// Network is the read-only view of a catalogue the builder needs.
type Network interface {
	Stops() []domain.Stop
	Buses() []domain.Bus
	Stop(name string) (domain.Stop, bool)
	RoadDistanceByID(from, to int) uint32
}

// EdgeInfo describes one graph edge. Name is the stop of a wait edge
// (SpanCount 0) or the bus of a ride edge (SpanCount >= 1).
type EdgeInfo struct {
	Name      string
	SpanCount int
	Weight    float64
}

// Data is everything a builder owns, exposed for persistence.
type Data struct {
	Settings Settings
	Graph    *graph.DirectedWeightedGraph[float64]
	Edges    []EdgeInfo
}

// Builder owns the routing graph of a catalogue and the metadata of every
// edge, indexed by edge id.
type Builder struct {
	network  Network
	settings Settings
	graph    *graph.DirectedWeightedGraph[float64]
	edges    []EdgeInfo
}

// NewBuilder builds the routing graph of network.
func NewBuilder(network Network, settings Settings) (*Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	stops := network.Stops()
	b := &Builder{
		network:  network,
		settings: settings,
		graph:    graph.NewDirectedWeightedGraph[float64](len(stops) * 2),
		edges:    make([]EdgeInfo, 0, len(stops)*2),
	}
	b.addWaitEdges(stops)
	for _, bus := range network.Buses() {
		switch bus.RouteType {
		case domain.RouteCycle:
			b.addCycleEdges(bus)
		default:
			b.addForwardEdges(bus)
		}
	}
	return b, nil
}

// RestoreBuilder attaches a previously built graph and edge table to network.
func RestoreBuilder(network Network, settings Settings, g *graph.DirectedWeightedGraph[float64], edges []EdgeInfo) (*Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if want := len(network.Stops()) * 2; g.VertexCount() != want {
		return nil, fmt.Errorf("%w: graph has %d vertices, catalogue needs %d", ErrGraphMismatch, g.VertexCount(), want)
	}
	if len(edges) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: %d edge records for %d edges", ErrGraphMismatch, len(edges), g.EdgeCount())
	}
	return &Builder{
		network:  network,
		settings: settings,
		graph:    g,
		edges:    edges,
	}, nil
}

func waitVertex(stopID int) graph.VertexID  { return stopID * 2 }
func readyVertex(stopID int) graph.VertexID { return stopID*2 + 1 }

func (b *Builder) addEdge(from, to graph.VertexID, info EdgeInfo) {
	b.graph.AddEdge(graph.Edge[float64]{From: from, To: to, Weight: info.Weight})
	b.edges = append(b.edges, info)
}

func (b *Builder) addWaitEdges(stops []domain.Stop) {
	for _, stop := range stops {
		b.addEdge(waitVertex(stop.ID), readyVertex(stop.ID), EdgeInfo{
			Name:   stop.Name,
			Weight: b.settings.BusWaitTime,
		})
	}
}

// hopTime is the travel time in minutes between two adjacent stops.
func (b *Builder) hopTime(from, to int) float64 {
	return float64(b.network.RoadDistanceByID(from, to)) / b.settings.metersPerMinute()
}

// addCycleEdges connects every stop to each later stop of the loop. The
// last stop of a cycle repeats the first one, so the sweep from the first
// position ends one stop early.
func (b *Builder) addCycleEdges(bus domain.Bus) {
	stops := bus.Stops
	n := len(stops)
	for i := 0; i < n; i++ {
		end := n
		if i == 0 {
			end = n - 1
		}
		var elapsed float64
		for j := i + 1; j < end; j++ {
			elapsed += b.hopTime(stops[j-1], stops[j])
			b.addEdge(readyVertex(stops[i]), waitVertex(stops[j]), EdgeInfo{
				Name:      bus.Name,
				SpanCount: j - i,
				Weight:    elapsed,
			})
		}
	}
}

// addForwardEdges sweeps outbound from position r and inbound from its
// mirror position in lockstep. The two directions accumulate separately
// since road distances are directional.
func (b *Builder) addForwardEdges(bus domain.Bus) {
	stops := bus.Stops
	n := len(stops)
	for r := 0; r < n; r++ {
		l := n - 1 - r
		var outbound, inbound float64
		for k := 1; r+k < n; k++ {
			outbound += b.hopTime(stops[r+k-1], stops[r+k])
			inbound += b.hopTime(stops[l-k+1], stops[l-k])
			b.addEdge(readyVertex(stops[r]), waitVertex(stops[r+k]), EdgeInfo{
				Name:      bus.Name,
				SpanCount: k,
				Weight:    outbound,
			})
			b.addEdge(readyVertex(stops[l]), waitVertex(stops[l-k]), EdgeInfo{
				Name:      bus.Name,
				SpanCount: k,
				Weight:    inbound,
			})
		}
	}
}

// StopVertex returns the wait vertex of the named stop. Every journey
// starts and ends there.
func (b *Builder) StopVertex(name string) (graph.VertexID, bool) {
	stop, ok := b.network.Stop(name)
	if !ok {
		return 0, false
	}
	return waitVertex(stop.ID), true
}

// Edge returns the metadata of an edge. The id must come from this builder's graph.
func (b *Builder) Edge(id graph.EdgeID) EdgeInfo { return b.edges[id] }

// Graph returns the routing graph. It must not be modified.
func (b *Builder) Graph() *graph.DirectedWeightedGraph[float64] { return b.graph }

// Settings returns the settings the graph was weighted with.
func (b *Builder) Settings() Settings { return b.settings }

// Edges returns the metadata table in edge id order. It must not be modified.
func (b *Builder) Edges() []EdgeInfo { return b.edges }

// Data returns the settings, graph and edge table together for persistence.
func (b *Builder) Data() Data {
	return Data{Settings: b.settings, Graph: b.graph, Edges: b.edges}
}
