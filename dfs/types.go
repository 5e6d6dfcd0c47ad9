// Visitation states, tunable options, error definitions, and the
// DFSResult type for depth-first search over a core.Graph.

package dfs

import (
	"context"
	"errors"
)

// Visitation state of a vertex during depth-first traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants are fully explored.
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// FindPath, or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that a path target ID does not
	// exist in the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrUndirectedGraph is returned when TopologicalSort is invoked on an
	// undirected graph, where "edge direction" has no meaning.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort; a cyclic graph has no topological order.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNoPath is returned by FindPath when the target is unreachable.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to result.PostOrder.
	// Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before the
	// walker recurses into it. Return true to traverse, false to skip.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the
	// graph, covering disconnected components (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbor vertices skipped because
	// FilterNeighbor returned false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex, covering disconnected
// components; startID is ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports discovery and finish orders, depths, parent links, and visited
// flags, as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []string

	// PostOrder records vertices in the sequence they finished, i.e. after
	// all their descendants were explored. Reversing it yields a valid
	// topological order on a DAG.
	PostOrder []string

	// Depth maps each vertex ID to its recursion depth (#edges along the
	// DFS tree branch) at first discovery.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex from which it was first
	// discovered. Tree roots do not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
