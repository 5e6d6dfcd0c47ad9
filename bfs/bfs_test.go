package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/UPstartDeveloper/Graph-ADT/bfs"
	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// buildGraph constructs a graph from explicit vertices and unweighted
// edges, failing the test on any construction error.
func buildGraph(t testing.TB, directed bool, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%q): %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%q,%q): %v", e[0], e[1], err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// weighted graph unsupported
	gW := core.NewGraph(core.WithWeighted())
	gW.AddVertex("A")
	if _, err := bfs.BFS(gW, "A"); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Errorf("weighted graph: want ErrWeightedGraph, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := buildGraph(t, false, []string{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := buildGraph(t, false,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
	)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	// Neighbors are explored in sorted order, so B before D at depth 1
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}

	// Depth checks
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for v, want := range wantDepth {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

// TestBFS_DiamondVisitsOnce exercises the graph-vs-tree distinction:
// a vertex reachable along two paths is visited exactly once.
func TestBFS_DiamondVisitsOnce(t *testing.T) {
	// A→B, A→C, B→D, C→D
	g := buildGraph(t, true,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
	)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	seen := make(map[string]int)
	for _, id := range res.Order {
		seen[id]++
	}
	if seen["D"] != 1 {
		t.Errorf("D visited %d times; want exactly 1", seen["D"])
	}
	// D's parent is B: B is dequeued before C and claims D first
	if p := res.Parent["D"]; p != "B" {
		t.Errorf("Parent[D] = %q; want B", p)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"X", "Y", "P", "Q"},
		[][2]string{{"X", "Y"}, {"P", "Q"}},
	)

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
	// filter out B→C
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopDedup ensures that a self-loop does not enqueue its vertex twice.
func TestBFS_SelfLoopDedup(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	for _, id := range []string{"A", "B"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("A", "A", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := buildGraph(t, false, []string{"X"}, nil)
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if _, err := res.PathTo("Y"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	// build a longer chain
	for i := 0; i <= 100; i++ {
		g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := buildGraph(t, false, []string{"A", "B"}, [][2]string{{"A", "B"}})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

// TestWalk_StreamsVisitOrder checks that the lazy stream yields the same
// sequence as the eager traversal and stops when the consumer breaks.
func TestWalk_StreamsVisitOrder(t *testing.T) {
	g := buildGraph(t, true,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
	)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	seq, err := bfs.Walk(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for id := range seq {
		got = append(got, id)
	}
	if !reflect.DeepEqual(got, res.Order) {
		t.Errorf("Walk order = %v; want %v", got, res.Order)
	}

	// breaking out stops the walk
	got = got[:0]
	for id := range seq {
		got = append(got, id)
		if len(got) == 2 {
			break
		}
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("partial walk = %v; want %v", got, want)
	}
}

// TestWalk_Errors verifies eager validation of the lazy stream.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.Walk(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestShortestPath covers competing routes, trivial paths, and error cases.
func TestShortestPath(t *testing.T) {
	// Route1: A–B–C–D–K (4 hops), Route2: A–E–F–K (3 hops)
	g := buildGraph(t, false,
		[]string{"A", "B", "C", "D", "E", "F", "K"},
		[][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
			{"A", "E"}, {"E", "F"}, {"F", "K"},
		},
	)

	path, err := bfs.ShortestPath(g, "A", "K")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "E", "F", "K"}; !reflect.DeepEqual(path, want) {
		t.Errorf("ShortestPath = %v; want %v", path, want)
	}

	// start → start
	if path, _ := bfs.ShortestPath(g, "A", "A"); !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("trivial path = %v; want [A]", path)
	}

	// absent endpoints
	if _, err := bfs.ShortestPath(g, "nope", "K"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("absent start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, "A", "nope"); !errors.Is(err, bfs.ErrTargetVertexNotFound) {
		t.Errorf("absent target: want ErrTargetVertexNotFound, got %v", err)
	}

	// unreachable target in a directed graph
	gd := buildGraph(t, true, []string{"A", "B"}, [][2]string{{"A", "B"}})
	if _, err := bfs.ShortestPath(gd, "B", "A"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFSResult_AtDepth verifies depth rings on an undirected cycle.
func TestBFSResult_AtDepth(t *testing.T) {
	// r0–r1–r2–r3–r4–r5–r0
	g := buildGraph(t, false,
		[]string{"r0", "r1", "r2", "r3", "r4", "r5"},
		[][2]string{{"r0", "r1"}, {"r1", "r2"}, {"r2", "r3"}, {"r3", "r4"}, {"r4", "r5"}, {"r5", "r0"}},
	)
	res, err := bfs.BFS(g, "r0")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"r1", "r5"}; !reflect.DeepEqual(res.AtDepth(1), want) {
		t.Errorf("AtDepth(1) = %v; want %v", res.AtDepth(1), want)
	}
	if want := []string{"r3"}; !reflect.DeepEqual(res.AtDepth(3), want) {
		t.Errorf("AtDepth(3) = %v; want %v", res.AtDepth(3), want)
	}
	if got := res.AtDepth(-1); got != nil {
		t.Errorf("AtDepth(-1) = %v; want nil", got)
	}
	if got := res.AtDepth(9); got != nil {
		t.Errorf("AtDepth(9) = %v; want nil", got)
	}
}
