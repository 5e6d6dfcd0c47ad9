// Cycle detection for directed and undirected graphs: three-color DFS
// with back-edge recording, plus canonical rewriting of each cycle so
// duplicates collapse and output stays deterministic.

package dfs

import (
	"fmt"
	"sort"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// HasCycle reports whether g contains at least one cycle. A nil graph is
// cycle-free. It runs the same traversal as DetectCycles and discards the
// enumerated cycles; use DetectCycles when the cycles themselves matter.
func HasCycle(g *core.Graph) (bool, error) {
	has, _, err := DetectCycles(g)

	return has, err
}

// DetectCycles inspects graph g for all simple cycles.
// Each cycle is reported closed ([v0, ..., v0]) in canonical spelling, and
// the list is sorted by signature, so output is deterministic.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a neighbor-fetch error occurs, returns (false, nil, error).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state: color map, DFS path stack for cycle
	//    reconstruction, and a signature set for deduplication
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{}, len(verts))
	var cycles [][]string

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if state[v] == White {
			if err := dfsVisit(g, v, "", state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// 4) Sort cycles by their comma-joined signature for deterministic order
	sort.Slice(cycles, func(i, j int) bool {
		return joinSig(cycles[i]) < joinSig(cycles[j])
	})

	// 5) Report
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex id, tracking parent to skip
// the trivial backtrack edge in undirected graphs. Every Gray-to-Gray edge
// closes a cycle along the current path stack; the segment is recorded via
// recordCycle. Returns an error only if neighbor iteration fails.
func dfsVisit(
	g *core.Graph,
	id, parent string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	// 1) Mark current vertex as Gray (in progress)
	state[id] = Gray

	// 2) Push id onto the DFS path stack for later cycle reconstruction
	*path = append(*path, id)

	// 3) Retrieve neighbors in ascending ID order
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}

	// 4) Explore each neighbor
	for _, nbr := range nbrs {
		// 4a) Undirected: the mirrored edge straight back to the parent is
		//     the edge we arrived on, not a cycle
		if !g.Directed() && nbr == parent {
			continue
		}

		// 4b) Examine the neighbor's visitation state
		switch state[nbr] {
		case White:
			// Unvisited: recurse deeper
			if err = dfsVisit(g, nbr, id, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			// Back-edge: nbr sits somewhere on the current path stack.
			// Measure the closed segment from nbr to the current vertex.
			idx := indexOf(*path, nbr)
			segLen := len(*path) - idx

			// A two-vertex "cycle" in an undirected graph is the same edge
			// walked twice; only directed graphs have true 2-cycles.
			if segLen == 2 && !g.Directed() {
				continue
			}
			// A segment of one vertex is a self-loop [v, v]: a valid cycle
			// whenever the graph stores loop edges at all.
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	// 5) Backtrack: pop id from the path stack and mark it Black
	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts the cycle closing at start from the current path
// stack, canonicalizes it, and appends it to cycles unless an equivalent
// cycle (any rotation, either direction) was already recorded.
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	// 1) Locate start within the path stack
	idx := indexOf(path, start)

	// 2) Copy the segment from idx to the end, then close the loop
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	// 3) Canonicalize rotations and direction
	sig, canon := canonical(seq)
	// 4) Record only unseen signatures
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical rewrites the closed cycle [v0, ..., v0] so equal cycles share
// one spelling: rotate the smallest vertex to the front, then pick the
// lexicographically smaller of the forward and reversed readings.
// Vertices in a simple cycle are distinct, so the rotation starting at the
// minimum IS the minimal rotation. Returns the comma-joined signature and
// the canonical closed cycle.
func canonical(cycle []string) (string, []string) {
	// Drop the duplicated last element before rotating
	n := len(cycle) - 1
	base := cycle[:n]

	// 1) Minimal forward rotation
	rotF := rotateToMin(base)
	// 2) Minimal rotation of the reversed reading
	rotB := rotateToMin(reverse(base))

	// 3) Choose the lexicographically smaller of the two
	picked := rotF
	if compareSeq(rotB, rotF) < 0 {
		picked = rotB
	}

	// 4) Close the cycle again and build its signature
	closed := append(append([]string(nil), picked...), picked[0])

	return joinSig(closed), closed
}
