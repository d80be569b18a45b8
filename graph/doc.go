// Package graph provides a directed weighted multigraph with dense integer
// vertex and edge ids, and Router, an all-pairs shortest-path engine that
// precomputes every (from, to) answer once and then serves BuildRoute in
// time proportional to the path length.
//
// Weights are any integer or floating point type: Router combines them with +
// and compares them with <, so any W that satisfies Weight behaves the same.
//
// Complexity:
//
//   - NewRouter: Time O(V^3 + E), Space O(V^2).
//   - BuildRoute: Time O(path length).
//
// Errors (sentinel):
//
//   - ErrVertexOutOfRange  edge endpoint or incidence entry outside [0, V).
//   - ErrEdgeOutOfRange    incidence list or route table names an unknown edge.
//   - ErrRoutesShape       a restored route table is not V x V.
//
// Graphs and routers are immutable once built and safe for concurrent reads.
package graph
