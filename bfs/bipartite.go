// Two-coloring over an undirected view of the graph.

package bfs

import "github.com/UPstartDeveloper/Graph-ADT/core"

// IsBipartite reports whether the graph's vertices can be split into two
// sets such that every edge crosses between the sets.
//
// Edge direction is ignored: the check runs over an undirected view, as
// bipartiteness is a property of the underlying undirected structure.
// Every component is checked, components are entered in sorted vertex
// order, and a self-loop makes the graph non-bipartite immediately (a
// cycle of odd length one). Weights are irrelevant, so weighted graphs
// are accepted. Complexity: O(V + E).
func IsBipartite(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	// 1) Build the undirected adjacency view in one edge scan.
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			return false, nil
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	// 2) BFS 2-coloring, component by component.
	color := make(map[string]int, g.VertexCount())
	for _, root := range g.Vertices() {
		if _, seen := color[root]; seen {
			continue
		}
		color[root] = 0
		queue := []string{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[cur] {
				if c, seen := color[nbr]; seen {
					if c == color[cur] {
						return false, nil
					}
					continue
				}
				color[nbr] = 1 - color[cur]
				queue = append(queue, nbr)
			}
		}
	}

	return true, nil
}
