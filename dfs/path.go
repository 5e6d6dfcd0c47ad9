// Depth-first path finding between two vertices, built on the DFS walker.

package dfs

import (
	"errors"
	"fmt"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// FindPath returns one path from fromID to toID, both inclusive, found by
// depth-first exploration. The walker always descends into the smallest
// unvisited neighbor ID first, so the result is deterministic; it is NOT
// guaranteed to be a fewest-hop path (use bfs.ShortestPath for that).
// The traversal stops as soon as toID is discovered.
// Returns ErrStartVertexNotFound or ErrTargetVertexNotFound for absent
// endpoints and ErrNoPath (wrapped) when toID is unreachable.
func FindPath(g *core.Graph, fromID, toID string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(toID) {
		return nil, ErrTargetVertexNotFound
	}

	// Abort the walk at the first discovery of toID; Parent links recorded
	// up to that point trace the branch the walker was standing on.
	found := errors.New("dfs: target reached")
	stopAtTarget := WithOnVisit(func(id string) error {
		if id == toID {
			return found
		}
		return nil
	})

	res, err := DFS(g, fromID, append(opts, stopAtTarget)...)
	if err != nil && !errors.Is(err, found) {
		return nil, err
	}
	if !res.Visited[toID] {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, fromID, toID)
	}

	// Walk Parent links back from the target, then flip
	path := []string{}
	for cur := toID; ; {
		path = append(path, cur)
		prev, ok := res.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
