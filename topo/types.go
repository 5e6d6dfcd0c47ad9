// Error definitions and options for Kahn's-algorithm topological sort.

package topo

import (
	"context"
	"errors"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrUndirectedGraph is returned when Sort is invoked on an undirected
	// graph, where "edge direction" has no meaning.
	ErrUndirectedGraph = errors.New("topo: topological sort requires a directed graph")

	// ErrCycleDetected indicates the graph contains a cycle, so no
	// topological order covers every vertex.
	ErrCycleDetected = errors.New("topo: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("topo: failed to fetch neighbors")
)

// Option configures optional behavior for Sort.
type Option func(*sortOptions)

// sortOptions holds settings for Sort, currently only cancellation.
type sortOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultSortOptions returns the default options (Background context).
func defaultSortOptions() sortOptions {
	return sortOptions{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// The context is checked once per emitted vertex. Passing a nil context
// has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *sortOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
