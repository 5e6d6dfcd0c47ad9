// Dijkstra's shortest-path engine: input validation, the runner state
// machine, and the lazy-deletion priority queue.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// Dijkstra computes the shortest distance from source to every reachable
// vertex of the weighted graph g, applying any number of functional
// Options. Edge weights must be non-negative.
//
// The search settles vertices in increasing distance order using a
// min-heap frontier. Improvements push duplicate heap entries rather
// than re-keying in place (lazy decrease-key); stale entries are
// discarded on pop.
//
// Returns ErrGraphNil, ErrUnweightedGraph or ErrSourceNotFound for
// invalid input, ErrOptionViolation for bad options, ErrNegativeWeight
// if any edge weight is negative, or the context error on cancellation.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Validate the graph and the source vertex.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// 2) Build options and catch any invalid ones immediately.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Pre-scan all edges so a negative weight fails fast, before any
	//    distance has been settled.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare the runner.
	n := g.VertexCount()
	r := &runner{
		graph: g,
		opts:  cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[string]int64, n),
			Parent: make(map[string]string, n),
		},
		settled: make(map[string]bool, n),
		pq:      make(frontier, 0, n),
	}

	// 5) Seed the frontier with the source at distance zero.
	r.init(source)
	// 6) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	graph   *core.Graph
	opts    options
	res     *Result
	settled map[string]bool // distance finalized
	pq      frontier
}

// init establishes the heap invariants and pushes the source at distance 0.
func (r *runner) init(source string) {
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: source, dist: 0})
}

// process repeatedly settles the closest frontier vertex and relaxes its
// edges. Every Dist entry is final once the loop ends: a vertex enters
// Dist only together with a live heap entry at that distance, so it is
// popped and settled before the frontier can drain.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.ctx.Done():
			return r.opts.ctx.Err()
		default:
		}

		// 1) Pop the closest frontier vertex.
		item := heap.Pop(&r.pq).(*frontierItem)
		// 2) Drop stale entries: the vertex already settled at a smaller
		//    distance than this leftover duplicate carries.
		if r.settled[item.id] {
			continue
		}
		// 3) Settle it; Dist[item.id] is final from here on.
		r.settled[item.id] = true
		// 4) Relax its edges.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of each neighbor of u by routing
// through u. Assumes Dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, u, err)
	}

	du := r.res.Dist[u]
	for _, e := range edges {
		// Undirected rows hold the shared edge in its stored orientation;
		// the neighbor is whichever endpoint is not u.
		v := e.To
		if v == u {
			v = e.From
		}
		// A self-loop cannot improve any distance.
		if v == u {
			continue
		}

		// 1) Candidate distance through u.
		nd := du + e.Weight
		// 2) Honor the WithMaxDistance cap.
		if nd > r.opts.maxDistance {
			continue
		}
		// 3) Keep strict improvements only; a missing Dist entry means
		//    unreached (+∞). At equal cost the earlier parent stands.
		if cur, ok := r.res.Dist[v]; ok && nd >= cur {
			continue
		}

		// 4) Record the improvement and push a fresh frontier entry;
		//    any older entries for v stay behind as stale duplicates.
		r.res.Dist[v] = nd
		r.res.Parent[v] = u
		heap.Push(&r.pq, &frontierItem{id: v, dist: nd})
	}

	return nil
}

// frontierItem is one heap entry: a vertex and the distance it was
// pushed at.
type frontierItem struct {
	id   string
	dist int64
}

// frontier is a min-heap of *frontierItem ordered by distance, with ties
// broken by vertex ID so equal-cost runs settle vertices in a stable
// order.
type frontier []*frontierItem

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by distance, then by ID.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].id < f[j].id
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be a *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last entry; heap.Pop has already swapped
// the minimum there.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
