// Reader for YAML graph documents.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// yamlDocument mirrors the on-disk YAML shape.
type yamlDocument struct {
	Directed bool       `yaml:"directed"`
	Weighted bool       `yaml:"weighted"`
	Loops    bool       `yaml:"loops"`
	Vertices []string   `yaml:"vertices"`
	Edges    []yamlEdge `yaml:"edges"`
}

type yamlEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// ReadYAML parses a YAML graph document from r:
//
//	directed: true
//	weighted: true
//	vertices: [A, B]
//	edges:
//	  - {from: A, to: B, weight: 7}
//
// Decoding is strict: a field this format does not define is an error.
// An edge weight is only legal when the document declares weighted, and
// a self-loop only when it declares loops.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var yd yamlDocument
	if err := dec.Decode(&yd); err != nil {
		// An empty stream has no document to decode.
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	doc := document{
		directed: yd.Directed,
		weighted: yd.Weighted,
		loops:    yd.Loops,
		vertices: yd.Vertices,
	}
	for i, e := range yd.Edges {
		doc.edges = append(doc.edges, edgeSpec{
			from:   e.From,
			to:     e.To,
			weight: e.Weight,
			pos:    fmt.Sprintf("edges[%d]", i),
		})
	}

	return doc.build()
}

// ReadYAMLFile opens path and parses it with ReadYAML.
func ReadYAMLFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadYAML(f)
}
