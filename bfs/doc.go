// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - A visited set guarantees each reachable vertex is visited exactly once,
//     even when several paths lead to it.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Walk exposes the traversal as a lazy iter.Seq stream.
//   - ShortestPath reconstructs a fewest-hop route between two vertices.
//   - IsBipartite 2-colors every component over an undirected view.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for reachability, matching, and other graph algorithms.
//
// Determinism
//
//	Because core.NeighborIDs returns vertex IDs in sorted order and BFS
//	enqueues neighbors in that order, the visit sequence is fully
//	reproducible: ties between equal-depth vertices resolve
//	lexicographically.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "start")
//
//	// Lazy stream; each range restarts the traversal from scratch:
//	seq, err := bfs.Walk(g, "start")
//	for id := range seq { ... }
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook before a vertex is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting a vertex.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the start vertex does not exist.
//   - ErrTargetVertexNotFound  if a path target does not exist.
//   - ErrWeightedGraph         if run on a weighted graph (use dijkstra).
//   - ErrOptionViolation       if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors             if neighbor lookup fails mid-walk.
//   - ErrNoPath                if a requested destination is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
