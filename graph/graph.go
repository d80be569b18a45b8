package graph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned when restoring graphs and routers.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, EdgeCount).
	ErrEdgeOutOfRange = errors.New("graph: edge id out of range")

	// ErrRoutesShape indicates a route table whose dimensions do not match the graph.
	ErrRoutesShape = errors.New("graph: route table does not match graph")
)

// Weight is the set of edge weight types: additive and totally ordered.
type Weight interface {
	constraints.Integer | constraints.Float
}

// VertexID identifies a vertex; vertices are numbered 0..VertexCount-1.
type VertexID = int

// EdgeID identifies an edge; edges are numbered in insertion order.
type EdgeID = int

// Edge is a directed weighted edge.
type Edge[W Weight] struct {
	From   VertexID
	To     VertexID
	Weight W
}

// DirectedWeightedGraph stores edges in insertion order together with the
// outgoing incidence list of every vertex.
type DirectedWeightedGraph[W Weight] struct {
	edges     []Edge[W]
	incidence [][]EdgeID
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges.
func NewDirectedWeightedGraph[W Weight](vertexCount int) *DirectedWeightedGraph[W] {
	incidence := make([][]EdgeID, vertexCount)
	for i := range incidence {
		incidence[i] = []EdgeID{}
	}
	return &DirectedWeightedGraph[W]{
		edges:     []Edge[W]{},
		incidence: incidence,
	}
}

// RestoreDirectedWeightedGraph rebuilds a graph from its edge list and
// incidence lists, as exported by Edges and IncidenceLists.
func RestoreDirectedWeightedGraph[W Weight](edges []Edge[W], incidence [][]EdgeID) (*DirectedWeightedGraph[W], error) {
	vertexCount := len(incidence)
	for id, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("edge %d (%d -> %d): %w", id, e.From, e.To, ErrVertexOutOfRange)
		}
	}
	for v, list := range incidence {
		for _, id := range list {
			if id < 0 || id >= len(edges) {
				return nil, fmt.Errorf("incidence list of vertex %d names edge %d: %w", v, id, ErrEdgeOutOfRange)
			}
			if edges[id].From != v {
				return nil, fmt.Errorf("incidence list of vertex %d names edge %d leaving vertex %d: %w", v, id, edges[id].From, ErrEdgeOutOfRange)
			}
		}
	}
	g := &DirectedWeightedGraph[W]{
		edges:     append([]Edge[W](nil), edges...),
		incidence: make([][]EdgeID, vertexCount),
	}
	for v, list := range incidence {
		g.incidence[v] = append([]EdgeID{}, list...)
	}
	return g, nil
}

// AddEdge appends e and returns its id. Both endpoints must be valid vertices.
func (g *DirectedWeightedGraph[W]) AddEdge(e Edge[W]) EdgeID {
	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

func (g *DirectedWeightedGraph[W]) VertexCount() int { return len(g.incidence) }

func (g *DirectedWeightedGraph[W]) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id. The id must be in range.
func (g *DirectedWeightedGraph[W]) Edge(id EdgeID) Edge[W] { return g.edges[id] }

// IncidentEdges returns the ids of the edges leaving v. The slice must not be modified.
func (g *DirectedWeightedGraph[W]) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

// Edges returns every edge in id order. The slice must not be modified.
func (g *DirectedWeightedGraph[W]) Edges() []Edge[W] { return g.edges }

// IncidenceLists returns the outgoing edge ids of every vertex. The slices must not be modified.
func (g *DirectedWeightedGraph[W]) IncidenceLists() [][]EdgeID { return g.incidence }
