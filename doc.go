// Package graphadt is an in-memory playground for building, exploring,
// and analyzing graphs — a strict graph ADT with deterministic traversals,
// ordering, shortest paths, and document loading.
//
// 🚀 What is Graph-ADT?
//
//	A thread-safe graph library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks,
//		  with every edge endpoint required to exist before the edge does
//		• Traversals: BFS and DFS, eager results or lazy iter.Seq walks
//		• Orderings: Kahn's topological sort + the DFS reverse-post-order variant
//		• Shortest paths: unweighted via BFS, weighted via Dijkstra
//		• Documents: load graphs from the legacy text format, YAML, or HCL
//
// ✨ Why choose Graph-ADT?
//
//   - Strict by construction – AddEdge never invents vertices; violations
//     surface as errors.Is-able sentinels, not silent repairs
//   - Deterministic – neighbors, vertices, and edges come back sorted, so
//     every traversal and ordering is reproducible run to run
//   - Rock-solid guarantees – R/W locks, in-code docs & hooks
//   - Extensible – add custom hooks (OnVisit, OnEnqueue…) for custom logic
//
// Under the hood, everything is organized under six subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/      — breadth-first traversal, shortest hop paths, bipartite check
//	dfs/      — depth-first traversal, path finding, cycle detection, toposort
//	topo/     — Kahn's-algorithm topological sort over directed graphs
//	dijkstra/ — weighted shortest paths with a lazy-deletion min-heap
//	graphio/  — text / YAML / HCL graph documents, all funneled through core
//
// Quick ASCII example:
//
//	    A
//	   ╱ ╲
//	  B   C
//	   ╲ ╱
//	    D
//
//	a diamond: both branches reconverge on D, and a breadth-first
//	traversal from A still visits D exactly once.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/UPstartDeveloper/Graph-ADT
package graphadt
