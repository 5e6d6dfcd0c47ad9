// Package dijkstra provides single-source shortest paths over a weighted
// core.Graph with non-negative edge weights.
//
// What
//
//   - Dijkstra(g, source) settles vertices in increasing distance order
//     using a container/heap min-heap frontier with lazy decrease-key:
//     improvements push duplicate entries, pops discard the stale ones.
//   - The Result carries Dist (shortest distance per reached vertex;
//     unreachable vertices have no entry), Parent (the shortest-path
//     tree) and PathTo for path reconstruction.
//   - A negative edge weight anywhere in the graph aborts the run before
//     the search starts (ErrNegativeWeight); Dijkstra's greedy settling
//     is only correct without negative weights.
//
// Why
//
//   - The weighted counterpart to bfs.ShortestPath: when edges carry
//     costs, fewest hops is no longer cheapest.
//   - Routing, itinerary planning, cost-bounded reachability (combine
//     with WithMaxDistance to stop exploring past a budget).
//
// Determinism
//
//	Neighbors relax in sorted ID order and the frontier breaks distance
//	ties by vertex ID, so equal graphs yield equal Dist AND equal Parent
//	maps. When several shortest paths exist, the parent recorded is the
//	first one found at that cost, never a later equal-cost rival.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)  (each vertex settles once, each edge may
//     push one frontier entry, heap operations cost O(log V))
//   - Memory: O(V + E)          (result maps plus worst-case frontier)
//
// Usage
//
//	res, err := dijkstra.Dijkstra(g, "A")
//	if err != nil {
//	    return err
//	}
//	path, cost, err := res.PathTo("F")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // "F" is unreachable from "A"
//	}
//
// Options
//
//   - WithMaxDistance(d)    prune the search at distance d (d > 0).
//   - WithCancelContext(ctx) abort mid-search when ctx is done.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrUnweightedGraph   if the graph does not carry weights.
//   - ErrSourceNotFound    if the source vertex is absent.
//   - ErrOptionViolation   if an option argument is invalid.
//   - ErrNegativeWeight    if any edge weight is negative.
//   - ErrNeighbors         if neighbor lookup fails mid-search.
//   - ErrNoPath            from PathTo, when the target was not reached.
//   - context.Canceled     if the context is canceled mid-search.
package dijkstra
