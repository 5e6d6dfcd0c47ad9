// Package core provides a thread-safe in-memory Graph implementation
// with a minimal, composable API surface.
//
// The Graph G = (V,E) keeps one edge per ordered vertex pair and supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to] = *Edge
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Every edge references vertices already present in the graph: AddEdge
// refuses unknown endpoints with ErrVertexNotFound rather than creating
// them implicitly, so the endpoint invariant can never be violated by a
// mutation. Vertices are added explicitly and idempotently via AddVertex.
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), Neighbors() and
//     NeighborIDs() all return results sorted by vertex ID, so every
//     traversal built on top of them is reproducible. Algorithms in this
//     module document their tie-breaks in terms of this ordering.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy of edges).
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation of all edges.
//	    • Directed graphs store only “from→to” cells.
//	    • Undirected graphs mirror each edge in adjacency[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1); idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertex(id string) (*Vertex, error)  // O(1)
//	RemoveVertex(id string) error       // O(V+E) worst case (directed incoming scan)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64) error // O(1); both endpoints must exist
//	RemoveEdge(from,to string) error            // O(1)
//	HasEdge(from,to string) bool                // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), sorted by neighbor ID
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Counts & degrees
//	Degree(id string) (in,out int, err error) // O(E) directed, O(1) undirected
//	VertexCount() int                         // O(1)
//	EdgeCount() int                           // O(1)
//
//	// Maintenance
//	Clear()                              // O(1): reset storage; preserve flags
//
//	// Cloning
//	CloneEmpty() *Graph                  // O(V): copy vertices+flags only
//	Clone() *Graph                       // O(V+E·log E): deep-copy edges+adjacency
//
// Edge struct fields:
//
//	From   string // source vertex ID (orientation of first insertion when undirected)
//	To     string // destination vertex ID
//	Weight int64  // cost/capacity (zero in unweighted graphs)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – edge or query references a vertex absent from the graph
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – non-zero weight on unweighted graph
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
