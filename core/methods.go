// Thread-safe vertex and edge management for the Graph type defined in
// types.go. Separate RWMutex locks for vertices (muVert) and
// edges+adjacency (muEdgeAdj) keep contention low. Adjacency is stored as
// a nested map adjacency[from][to] = *Edge, allowing constant-time
// existence, insertion, and deletion of edges; undirected edges occupy a
// mirrored cell sharing the same *Edge.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	// Insert new Vertex struct with empty Metadata map
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize the adjacency row for this vertex
	g.muEdgeAdj.Lock()
	g.ensureAdjRow(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	// Acquire read lock on vertices
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the stored Vertex record for id, including its Metadata.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(deg(v)) undirected, O(V+deg(v)) directed (incoming scan).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Verify vertex presence
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Every cell in the vertex's own row is a distinct incident edge:
	// outgoing for directed graphs, any incident for undirected.
	g.edgeCount -= len(g.adjacency[id])
	if g.directed {
		// Directed: drop incoming edges from every other row.
		for from, row := range g.adjacency {
			if from == id {
				continue
			}
			if _, ok := row[id]; ok {
				delete(row, id)
				g.edgeCount--
			}
		}
	} else {
		// Undirected: drop the mirror cells named by the vertex's own row.
		for to := range g.adjacency[id] {
			if to != id {
				delete(g.adjacency[to], id)
			}
		}
	}

	// Remove the row and the vertex itself
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates an edge from 'from' to 'to' with the given weight.
// Both endpoints must already exist: unlike AddVertex, AddEdge is not
// creative, and referencing an absent vertex fails with ErrVertexNotFound.
// For undirected graphs the adjacency is mirrored two ways, sharing one
// Edge record. Re-adding an existing (from,to) pair overwrites its weight.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 4) Both endpoints must be present before any mutation
	g.muVert.RLock()
	_, fromOK := g.vertices[from]
	_, toOK := g.vertices[to]
	g.muVert.RUnlock()
	if !fromOK || !toOK {
		return ErrVertexNotFound
	}

	// 5) Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Overwrite in place when the pair already has an edge;
	//    the mirror cell shares the pointer, so one write covers both.
	if e, ok := g.adjacency[from][to]; ok {
		e.Weight = weight
		return nil
	}

	// 7) Construct and store the Edge
	e := &Edge{From: from, To: to, Weight: weight}
	g.ensureAdjRow(from)
	g.adjacency[from][to] = e

	// 8) If this graph is undirected, mirror the cell for the reverse
	//    direction (loops skip the mirror)
	if !g.directed && from != to {
		g.ensureAdjRow(to)
		g.adjacency[to][from] = e
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge between 'from' and 'to' (and its mirror in
// undirected graphs). In a directed graph only the exact orientation is
// removed. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// Lock edges+adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Fetch edge
	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	// Mirror removal for undirected
	if !g.directed && from != to {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports true if an edge from 'from' to 'to' exists.
// Undirected edges answer true for both orientations.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns all edges incident to vertex 'id': outgoing edges for
// directed graphs, edges in both directions for undirected ones.
// The result is sorted by the neighboring vertex ID, which is the
// tie-break order every traversal in this module inherits.
// Complexity: O(d·log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	// Lock edges+adjacency for reading
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	row := g.adjacency[id]
	// Sort neighbor IDs first so the edge slice comes out ordered
	ids := make([]string, 0, len(row))
	for to := range row {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	out := make([]*Edge, 0, len(ids))
	for _, to := range ids {
		out = append(out, row[to])
	}

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, unique and
// sorted lexicographically.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Accessors:
////////////////////

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all distinct edges sorted by (From, To). Undirected edges
// appear once, in the orientation they were first added.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, g.edgeCount)
	for from, row := range g.adjacency {
		for to, e := range row {
			// Mirrored cells carry the reversed key order; keep the
			// cell matching the stored orientation so each edge
			// appears exactly once.
			if from != e.From || to != e.To {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Degree returns the in- and out-degree of id. For undirected graphs both
// numbers equal the count of incident edges (a self-loop counts once).
// Complexity: O(E) directed, O(1) undirected.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return 0, 0, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out = len(g.adjacency[id])
	if !g.directed {
		return out, out, nil
	}
	// Directed: count incoming cells across all rows
	// (the vertex's own row contributes when a self-loop exists)
	for _, row := range g.adjacency {
		if _, ok := row[id]; ok {
			in++
		}
	}

	return in, out, nil
}

// EdgeCount returns total number of distinct edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Cloning & maintenance:
////////////////////

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Vertex Metadata maps are shared, not deep-copied.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	// Copy configuration via options
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	// Copy vertices
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]*Edge)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Complexity: O(V + E·logE)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	// Snapshot edges without holding locks across the rebuild
	for _, e := range g.Edges() {
		ne := &Edge{From: e.From, To: e.To, Weight: e.Weight}
		clone.adjacency[ne.From][ne.To] = ne
		if !clone.directed && ne.From != ne.To {
			clone.adjacency[ne.To][ne.From] = ne
		}
		clone.edgeCount++
	}

	return clone
}

// Clear resets the graph to empty state (vertices, edges) but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	// reset maps
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string]*Edge)
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helpers:
////////////////////

// ensureAdjRow makes adjacency[id] non-nil.
func (g *Graph) ensureAdjRow(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]*Edge)
	}
}
