// Reader for the legacy classroom text format.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// ReadGraph parses the legacy text format from r:
//
//	line 1:  "D" (directed) or "G" (general, undirected)
//	line 2:  comma-separated vertex IDs
//	line 3+: one edge per line, "(A,B)" or "(A,B,7)"
//
// Weights are enabled when any edge carries a third field; self-loops
// when any edge names the same vertex twice. Fields are trimmed, blank
// lines are skipped, and the scanner strips CR so Windows documents
// load the same. A header-only document yields an empty graph.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	// 1) Collect the meaningful lines together with their positions;
	//    weights and loops can only be declared by the edges themselves,
	//    so the graph cannot be constructed until every line is known.
	var (
		lines   []string
		lineNos []int
	)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		lineNos = append(lineNos, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading document: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}

	// 2) Header.
	var doc document
	switch lines[0] {
	case "D":
		doc.directed = true
	case "G":
		doc.directed = false
	default:
		return nil, fmt.Errorf("%w: line %d: want \"D\" or \"G\", got %q", ErrBadHeader, lineNos[0], lines[0])
	}

	// 3) Vertex roster.
	if len(lines) > 1 {
		for _, id := range strings.Split(lines[1], ",") {
			doc.vertices = append(doc.vertices, strings.TrimSpace(id))
		}
	}

	// 4) Edge lines; the document turns weighted or looped the moment an
	//    edge uses either.
	for i := 2; i < len(lines); i++ {
		spec, hasWeight, err := parseEdgeLine(lines[i], lineNos[i])
		if err != nil {
			return nil, err
		}
		if hasWeight {
			doc.weighted = true
		}
		if spec.from == spec.to {
			doc.loops = true
		}
		doc.edges = append(doc.edges, spec)
	}

	return doc.build()
}

// ReadFile opens path and parses it with ReadGraph.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadGraph(f)
}

// parseEdgeLine parses one "(A,B)" or "(A,B,7)" line. The second return
// reports whether the line carried a weight field.
func parseEdgeLine(line string, lineNo int) (edgeSpec, bool, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return edgeSpec{}, false, fmt.Errorf("%w: line %d: %q is not parenthesized", ErrBadEdge, lineNo, line)
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	spec := edgeSpec{pos: fmt.Sprintf("line %d", lineNo)}
	switch len(fields) {
	case 2:
		spec.from, spec.to = fields[0], fields[1]
		return spec, false, nil
	case 3:
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return edgeSpec{}, false, fmt.Errorf("%w: line %d: bad weight %q", ErrBadEdge, lineNo, fields[2])
		}
		spec.from, spec.to, spec.weight = fields[0], fields[1], w
		return spec, true, nil
	default:
		return edgeSpec{}, false, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d", ErrBadEdge, lineNo, len(fields))
	}
}
