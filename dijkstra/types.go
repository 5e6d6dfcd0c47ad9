// Option and error definitions plus the Result type for Dijkstra's
// shortest-path search over a weighted core.Graph.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrUnweightedGraph is returned when the graph does not carry weights;
	// shortest distances over unweighted graphs are bfs territory.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNegativeWeight is returned when any edge has a negative weight.
	// Detected by an O(E) pre-scan before the search starts.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dijkstra: neighbor iteration error")

	// ErrNoPath is returned when a requested destination is unreachable.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Option configures Dijkstra behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive distance cap), it is
// recorded internally and surfaced as ErrOptionViolation when Dijkstra
// is invoked.
type Option func(*options)

// options holds the tunable parameters of a single run.
type options struct {
	ctx         context.Context
	maxDistance int64

	// internal error recorded during option parsing
	err error
}

// defaultOptions: background context, no distance cap.
func defaultOptions() options {
	return options{
		ctx:         context.Background(),
		maxDistance: math.MaxInt64,
	}
}

// WithMaxDistance caps the search at distance d: vertices whose shortest
// distance from the source would exceed d are never explored and stay
// absent from the result.
//
//	d > 0:  explore only up to distance d
//	d <= 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int64) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDistance = d
	}
}

// WithCancelContext makes the search cancelable; cancellation is checked
// once per settled vertex.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result holds the outcome of a Dijkstra run:
//   - Source: the vertex all distances are measured from.
//   - Dist: map from each reached vertex to its shortest distance from
//     Source. Unreachable vertices (and vertices pruned by
//     WithMaxDistance) have no entry.
//   - Parent: map from each reached vertex except Source to its
//     predecessor on one shortest path; the shortest-path tree.
type Result struct {
	Source string
	Dist   map[string]int64
	Parent map[string]string
}

// PathTo reconstructs the cheapest path from Source to target, both
// inclusive, together with its total weight.
// Returns ErrNoPath (wrapped) if target was not reached.
func (r *Result) PathTo(target string) ([]string, int64, error) {
	d, ok := r.Dist[target]
	if !ok {
		return nil, 0, fmt.Errorf("%w to %q", ErrNoPath, target)
	}
	// build reversed path
	path := []string{}
	for cur := target; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get Source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}
