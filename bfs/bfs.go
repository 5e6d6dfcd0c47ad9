// Breadth-first traversal engine: the walker state machine, the BFS
// entry point, the lazy Walk stream, and ShortestPath.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// errStopWalk aborts a traversal from inside a hook without reporting a
// failure to the caller; it never escapes this package.
var errStopWalk = errors.New("bfs: walk stopped early")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ErrNeighbors for graph failures, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	o, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	// Main loop
	return w.res, w.loop()
}

// Walk returns the breadth-first visit sequence as a lazy stream.
// Validation happens eagerly; the traversal itself runs only while the
// sequence is consumed, and breaking out of the range stops it. Each new
// range over the sequence starts a fresh traversal from startID.
func Walk(g *core.Graph, startID string) (iter.Seq[string], error) {
	if _, err := prepare(g, startID, nil); err != nil {
		return nil, err
	}

	seq := func(yield func(string) bool) {
		// Traversal errors cannot occur here: inputs were validated above
		// and the stream owns its only hook. A concurrent mutation of g
		// merely ends the stream early.
		_, _ = BFS(g, startID, WithOnVisit(func(id string, _ int) error {
			if !yield(id) {
				return errStopWalk
			}
			return nil
		}))
	}

	return seq, nil
}

// ShortestPath returns the fewest-hop path from fromID to toID, both
// inclusive. The traversal stops as soon as toID is dequeued.
// Returns ErrStartVertexNotFound or ErrTargetVertexNotFound for absent
// endpoints and ErrNoPath (wrapped) when toID is unreachable.
func ShortestPath(g *core.Graph, fromID, toID string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(toID) {
		return nil, ErrTargetVertexNotFound
	}

	// Abort the walk once the target has been reached; parents recorded up
	// to that point are enough to rebuild the path.
	found := errors.New("bfs: target reached")
	stopAtTarget := WithOnVisit(func(id string, _ int) error {
		if id == toID {
			return found
		}
		return nil
	})

	res, err := BFS(g, fromID, append(opts, stopAtTarget)...)
	if err != nil && !errors.Is(err, found) {
		return nil, err
	}

	return res.PathTo(toID)
}

// prepare validates the graph, the start vertex, and the option set.
// Shared by BFS and Walk.
func prepare(g *core.Graph, startID string, opts []Option) (BFSOptions, error) {
	if g == nil {
		return BFSOptions{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return BFSOptions{}, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return BFSOptions{}, ErrStartVertexNotFound
	}
	// Disallow weighted graphs
	if g.Weighted() {
		return BFSOptions{}, ErrWeightedGraph
	}

	return o, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
