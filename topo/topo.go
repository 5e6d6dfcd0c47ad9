// Kahn's algorithm: peel off in-degree-zero vertices, smallest ID first,
// until either every vertex is emitted or only cycle members remain.

package topo

import (
	"container/heap"
	"fmt"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// Sort computes the topological ordering of all vertices in g: for every
// edge u→v, u appears before v. Among all valid orderings it returns the
// lexicographically smallest one, because the ready frontier always
// surfaces its smallest vertex ID.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirectedGraph.
// If g contains a cycle, returns ErrCycleDetected.
// Pass WithCancelContext(ctx) to enable cancellation.
func Sort(g *core.Graph, opts ...Option) ([]string, error) {
	// 1) Validate graph pointer and directedness
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2) Apply optional settings
	o := defaultSortOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Build the in-degree table from the edge set (each edge seen once;
	//    a self-loop counts toward its own vertex and pins it on a cycle)
	verts := g.Vertices()
	indeg := make(map[string]int, len(verts))
	for _, v := range verts {
		indeg[v] = 0
	}
	for _, e := range g.Edges() {
		indeg[e.To]++
	}

	// 4) Seed the frontier with every in-degree-zero vertex
	frontier := make(vertexHeap, 0, len(verts))
	for _, v := range verts {
		if indeg[v] == 0 {
			frontier = append(frontier, v)
		}
	}
	heap.Init(&frontier)

	// 5) Emit the smallest ready vertex, then release its successors
	order := make([]string, 0, len(verts))
	for frontier.Len() > 0 {
		// cancellation check (once per emitted vertex)
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		u := heap.Pop(&frontier).(string)
		order = append(order, u)

		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, v := range nbrs {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(&frontier, v)
			}
		}
	}

	// 6) Vertices never emitted sit on cycles: nothing inside a cycle can
	//    reach in-degree zero
	if len(order) < len(verts) {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// vertexHeap is a min-heap of vertex IDs ordered lexicographically, used
// as the ready frontier of Kahn's algorithm.
type vertexHeap []string

// Len returns the number of items in the heap.
func (h vertexHeap) Len() int { return len(h) }

// Less defines the comparison: smaller ID → higher priority.
func (h vertexHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps two elements in the heap.
func (h vertexHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be a string vertex ID.
func (h *vertexHeap) Push(x interface{}) { *h = append(*h, x.(string)) }

// Pop removes and returns the smallest element from the heap.
func (h *vertexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
