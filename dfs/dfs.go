// Depth-first traversal engine: the recursive walker, the DFS entry
// point, and the lazy Walk stream.

package dfs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// errStopWalk aborts a traversal from inside a hook without reporting a
// failure to the caller; it never escapes this package.
var errStopWalk = errors.New("dfs: walk stopped early")

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from startID. Neighbors are explored in ascending ID order,
// so the traversal is reproducible.
// Returns the DFSResult, or an error if aborted by context or hook;
// on abort the partially built result is returned alongside the error,
// with Order and PostOrder cleared when a hook failed.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1) Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3) Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4) Initialize result with capacity hints
	vertices := g.Vertices()
	res := &DFSResult{
		Order:     make([]string, 0, len(vertices)),
		PostOrder: make([]string, 0, len(vertices)),
		Depth:     make(map[string]int, len(vertices)),
		Parent:    make(map[string]string, len(vertices)),
		Visited:   make(map[string]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5) Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	// 6) Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// Walk returns the depth-first discovery sequence as a lazy stream.
// Validation happens eagerly; the traversal itself runs only while the
// sequence is consumed, and breaking out of the range stops it. Each new
// range over the sequence starts a fresh traversal from startID.
func Walk(g *core.Graph, startID string) (iter.Seq[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	seq := func(yield func(string) bool) {
		// Traversal errors cannot occur here: inputs were validated above
		// and the stream owns its only hook. A concurrent mutation of g
		// merely ends the stream early.
		_, _ = DFS(g, startID, WithOnVisit(func(id string) error {
			if !yield(id) {
				return errStopWalk
			}
			return nil
		}))
	}

	return seq, nil
}

// traverse visits vertex id at the given depth, recursing into neighbors.
// It honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1) Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2) Mark discovered: visited flag, depth, discovery order
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 3) Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			// abort: no authoritative orders on a failed walk
			w.res.Order, w.res.PostOrder = nil, nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4) Fetch neighbors once, sorted by ID
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order, w.res.PostOrder = nil, nil

		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}

	// 5) Explore each neighbor
	for _, nid := range nbrs {
		// A self-loop leads back to the vertex being visited
		if nid == id {
			continue
		}

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Depth limit: do not descend past MaxDepth
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6) Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order, w.res.PostOrder = nil, nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 7) Record finish order
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
