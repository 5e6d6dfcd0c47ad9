// Package topo provides Kahn's-algorithm topological sorting of a
// directed core.Graph: repeatedly emit a vertex with no remaining
// incoming edges, then release its successors.
//
// What
//
//   - Sort returns an ordering of all vertices such that for every edge
//     u→v, u appears before v.
//   - The ready frontier is a container/heap min-heap keyed by vertex ID,
//     so Sort returns the unique lexicographically-smallest valid order.
//   - A graph that still has unemitted vertices when the frontier drains
//     contains a cycle (no vertex of a cycle ever reaches in-degree zero);
//     Sort reports that as ErrCycleDetected.
//
// Why
//
//   - Order dependency graphs: build steps, task schedules, course plans.
//   - Complements the dfs package's finish-time sort: both produce valid
//     orders, this one is the smallest such order and needs no recursion.
//
// Determinism
//
//	The frontier always pops its smallest vertex ID, so Sort is a pure
//	function of the graph: equal graphs yield equal orders.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V log V + E)  (each vertex pushed/popped once, each edge
//     relaxed once; heap operations cost O(log V))
//   - Memory: O(V)            (in-degree table and frontier)
//
// Usage
//
//	order, err := topo.Sort(g)
//	if errors.Is(err, topo.ErrCycleDetected) {
//	    // dependency loop: no valid order exists
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrUndirectedGraph   if the graph is undirected.
//   - ErrCycleDetected     if no complete ordering exists.
//   - ErrNeighborFetch     if neighbor lookup fails mid-sort.
//   - context.Canceled     if the context is canceled mid-sort.
package topo
