// The codec-independent document form and the single builder every
// reader funnels through.

package graphio

import (
	"fmt"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// edgeSpec is one edge of a parsed document plus where it came from.
type edgeSpec struct {
	from, to string
	weight   int64
	pos      string // source position for error context, e.g. "line 7"
}

// document is the shape every codec parses into before construction.
type document struct {
	directed bool
	weighted bool
	loops    bool
	vertices []string
	edges    []edgeSpec
}

// build constructs the graph through core.AddVertex and core.AddEdge.
// Duplicate vertex entries merge silently; empty IDs, unknown edge
// endpoints, weights in unweighted documents and undeclared self-loops
// are rejected by the core and surface here with the entry's position.
// Both the graphio sentinel and the core sentinel match errors.Is.
func (d *document) build() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.directed {
		opts = append(opts, core.WithDirected(true))
	}
	if d.weighted {
		opts = append(opts, core.WithWeighted())
	}
	if d.loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	// 1) Vertices first, so every edge endpoint is known by the time the
	//    edges arrive.
	for _, id := range d.vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadVertex, id, err)
		}
	}

	// 2) Edges, each carrying its own source position.
	for _, e := range d.edges {
		if err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			return nil, fmt.Errorf("%w at %s: %s→%s: %w", ErrBadEdge, e.pos, e.from, e.to, err)
		}
	}

	return g, nil
}
