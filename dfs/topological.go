// Topological ordering of a directed acyclic graph via depth-first
// finish times: reverse post-order is a valid topological order, and a
// Gray-to-Gray edge during the walk proves a cycle.
//
// For the ordering that Kahn's algorithm produces (smallest eligible
// vertex first), see the topo package; both agree on validity.

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g:
// for every edge u→v, u appears before v. Roots and neighbors are scanned
// in ascending ID order, so the result is reproducible (it is the reverse
// finish order of that scan; the topo package yields the lexicographically
// smallest valid order instead).
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirectedGraph.
// If a cycle is detected, returns ErrCycleDetected.
// If neighbor lookup fails, returns ErrNeighborFetch.
// Pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1) Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2) Only directed graphs have a topological order
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	// 3) Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4) Initialize sorter state
	verts := g.Vertices() // sorted list of vertex IDs
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)), // all vertices start White
		order: make([]string, 0, len(verts)),    // capacity hint for post-order
	}
	// 5) Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6) Reverse post-order to produce the topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
// It respects cancellation and wraps neighbor lookup errors.
func (t *topoSorter) visit(id string) error {
	// 1) Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2) Cycle detection: a Gray vertex on the stack means a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 3) Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4) Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5) Retrieve outgoing neighbors; in a directed graph the adjacency row
	//    holds exactly the edges originating at id (a self-loop shows up
	//    here too and trips the Gray check above, as it should)
	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		// Wrap in sentinel ErrNeighborFetch so callers can check via errors.Is
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// 6) Recurse into each neighbor
	for _, nid := range neighbors {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	// 7) Mark as fully explored (Black)
	t.state[id] = Black
	// 8) Record in post-order list
	t.order = append(t.order, id)

	return nil
}
