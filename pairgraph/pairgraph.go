// Package pairgraph provides the candidate-opponent graph the pairing
// engine hands to the matcher: undirected, integer-weighted, loop-free,
// keyed by competitor id.
//
// The container is deliberately small. Vertices are competitor ids, an edge
// marks a pair allowed to meet, and its weight is the pairing cost. Both
// enumeration orders are deterministic: Vertices ascends by id, Edges keeps
// insertion order with endpoints normalized smaller-first. No internal
// locking — the pairing core is single-threaded by contract.
package pairgraph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("pairgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same pair.
	ErrDuplicateEdge = errors.New("pairgraph: edge already exists")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("pairgraph: weight must be non-negative")
)

// Edge is an undirected weighted connection; U < V always holds.
type Edge struct {
	U, V   int
	Weight int64
}

// Graph is an undirected weighted graph over integer vertex ids.
// The zero value is not usable; call NewGraph.
type Graph struct {
	adjacency map[int]map[int]int64
	edges     []Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]int64)}
}

// AddVertex ensures id exists as a vertex. Adding an existing vertex is a
// no-op; isolated vertices are legal and simply never match.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]int64)
	}
}

// AddEdge connects u and v with the given non-negative weight, creating
// either vertex as needed. Self-loops and parallel edges are rejected.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, u, v, weight)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, u, v)
	}

	g.AddVertex(u)
	g.AddVertex(v)
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight

	if u > v {
		u, v = v, u
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v int) bool {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = neighbors[v]

	return ok
}

// Weight returns the weight of the u–v edge and whether the edge exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	w, ok := neighbors[v]

	return w, ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns all edges in insertion order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}
