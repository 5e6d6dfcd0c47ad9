package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UPstartDeveloper/Graph-ADT/dfs"
)

func TestFindPath_Errors(t *testing.T) {
	_, err := dfs.FindPath(nil, "A", "B")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildGraph(t, true, []string{"A"}, nil)
	_, err = dfs.FindPath(g, "missing", "A")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.FindPath(g, "A", "missing")
	assert.ErrorIs(t, err, dfs.ErrTargetVertexNotFound)
}

// TestFindPath_TwoRoutes: E is reachable both via B and via C→D; the
// walker descends into B first (smallest neighbor ID), so the short
// branch wins here.
func TestFindPath_TwoRoutes(t *testing.T) {
	g := buildGraph(t, true,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"B", "E"}, {"A", "C"}, {"C", "D"}, {"D", "E"}},
	)

	path, err := dfs.FindPath(g, "A", "E")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, path)
}

// TestFindPath_NotShortest: depth-first commits to the first branch it
// enters, so a longer route can be returned even when a direct edge exists.
func TestFindPath_NotShortest(t *testing.T) {
	// A→B→Z is explored before the direct A→Z edge (B < Z).
	g := buildGraph(t, true,
		[]string{"A", "B", "Z"},
		[][2]string{{"A", "Z"}, {"A", "B"}, {"B", "Z"}},
	)

	path, err := dfs.FindPath(g, "A", "Z")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Z"}, path)
}

func TestFindPath_Trivial(t *testing.T) {
	g := buildGraph(t, true, []string{"A"}, nil)

	path, err := dfs.FindPath(g, "A", "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestFindPath_Unreachable(t *testing.T) {
	// Directed edge points away from the start
	g := buildGraph(t, true,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"C", "A"}},
	)

	path, err := dfs.FindPath(g, "A", "C")
	assert.Nil(t, path)
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestFindPath_Undirected(t *testing.T) {
	// Undirected edges are walkable both ways
	g := buildGraph(t, false,
		[]string{"A", "B", "C"},
		[][2]string{{"B", "A"}, {"B", "C"}},
	)

	path, err := dfs.FindPath(g, "A", "C")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestFindPath_MaxDepthBlocks(t *testing.T) {
	g := buildGraph(t, true,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)

	// C sits at depth 2; a depth-1 walk cannot reach it
	path, err := dfs.FindPath(g, "A", "C", dfs.WithMaxDepth(1))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, dfs.ErrNoPath)

	path, err = dfs.FindPath(g, "A", "C", dfs.WithMaxDepth(2))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestFindPath_FilterNeighborReroutes(t *testing.T) {
	// Filtering out B forces the longer route through C and D.
	g := buildGraph(t, true,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"B", "E"}, {"A", "C"}, {"C", "D"}, {"D", "E"}},
	)

	path, err := dfs.FindPath(g, "A", "E", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "B"
	}))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, path)
}
