// Package dfs provides depth-first search over a core.Graph, plus the
// classic DFS by-products: path finding, cycle detection, and a
// finish-order topological sort for directed acyclic graphs.
//
// What
//
//   - Explore as far as possible along each branch before backtracking.
//   - A visited set guarantees each reachable vertex is visited exactly
//     once, even when several paths lead to it.
//   - Returns a DFSResult containing:
//   - Order:     discovery (pre-order) sequence
//   - PostOrder: finish (post-order) sequence
//   - Depth:     map from vertex → recursion depth at first discovery
//   - Parent:    map from vertex → its predecessor in the DFS tree
//   - Visited:   set of reached vertices
//   - Supports pre-order (OnVisit) and post-order (OnExit) hooks that may
//     abort the traversal with an error.
//   - Limits: MaxDepth, FilterNeighbor, and WithFullTraversal for a forest
//     walk over every component.
//   - Walk exposes the discovery sequence as a lazy iter.Seq stream.
//   - FindPath returns one (not necessarily shortest) path between two
//     vertices.
//   - HasCycle / DetectCycles report and enumerate simple cycles.
//   - TopologicalSort orders a DAG so every edge points forward.
//
// Why
//
//   - Classify edges, detect cycles, and order dependency graphs
//     (build systems, schedulers, package managers).
//   - Foundation for connectivity, SCC, and path-finding algorithms.
//
// Determinism
//
//	Because core.NeighborIDs returns vertex IDs in sorted order and the
//	walker recurses in that order, every traversal, path, cycle list,
//	and topological order here is fully reproducible: ties resolve
//	lexicographically.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - DFS / Walk / FindPath: Time O(V+E), Memory O(V)
//   - DetectCycles:          Time O(V+E + C·L) for C cycles of mean length L
//   - TopologicalSort:       Time O(V+E), Memory O(V)
//
// Usage
//
//	// Basic DFS with no options:
//	result, err := dfs.DFS(g, "start")
//
//	// Lazy stream; each range restarts the traversal from scratch:
//	seq, err := dfs.Walk(g, "start")
//	for id := range seq { ... }
//
//	// Dependency ordering:
//	order, err := dfs.TopologicalSort(g)
//	if errors.Is(err, dfs.ErrCycleDetected) { ... }
//
// Options
//
//   - DefaultOptions(): background Context, nil hooks, no depth limit,
//     no filtering, single-source traversal.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithOnVisit(fn):        pre-order hook; returning error aborts DFS.
//   - WithOnExit(fn):         post-order hook; returning error aborts DFS.
//   - WithMaxDepth(limit):    do not descend past the given depth (>=0).
//   - WithFilterNeighbor(fn): skip neighbors for which fn(id)==false.
//   - WithFullTraversal():    restart from every unvisited vertex.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the start vertex does not exist.
//   - ErrTargetVertexNotFound  if a path target does not exist.
//   - ErrUndirectedGraph       if TopologicalSort is run on an undirected graph.
//   - ErrCycleDetected         if TopologicalSort finds a cycle.
//   - ErrNoPath                if a requested destination is unreachable.
//   - ErrNeighborFetch         if neighbor lookup fails mid-sort.
//   - context.Canceled         if the context is canceled mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit or OnExit.
package dfs
