// This file declares Vertex, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex,
	// typically an edge endpoint that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// In an undirected graph the edge is reachable from both endpoints and
// From/To record the orientation of the first insertion.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted modes,
// plus optional self-loops. At most one edge exists per ordered (from,to)
// pair; re-adding an existing pair overwrites the stored weight.
// muVert protects the vertices map; muEdgeAdj protects adjacency and the
// edge count.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags
	directed   bool // edge orientation
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex

	// adjacency[(from)Vertex.ID][(to)Vertex.ID] = *Edge
	// Undirected edges occupy two cells sharing one *Edge.
	adjacency map[string]map[string]*Edge

	edgeCount int // distinct edges (mirrored cells counted once)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, with no self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
