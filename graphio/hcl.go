// Reader for HCL graph documents.

package graphio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/UPstartDeveloper/Graph-ADT/core"
)

// hclDocument mirrors the HCL body shape.
type hclDocument struct {
	Directed bool        `hcl:"directed,optional"`
	Weighted bool        `hcl:"weighted,optional"`
	Loops    bool        `hcl:"loops,optional"`
	Vertices []hclVertex `hcl:"vertex,block"`
	Edges    []hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	ID string `hcl:"id,label"`
}

type hclEdge struct {
	From   string `hcl:"from"`
	To     string `hcl:"to"`
	Weight int64  `hcl:"weight,optional"`
}

// ReadHCL parses an HCL graph document:
//
//	directed = true
//	weighted = true
//
//	vertex "A" {}
//	vertex "B" {}
//
//	edge {
//	  from   = "A"
//	  to     = "B"
//	  weight = 7
//	}
//
// filename names the source in diagnostics; src is the document body.
// Attributes and blocks outside this shape are errors.
func ReadHCL(filename string, src []byte) (*core.Graph, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, ErrEmptyDocument
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrBadDocument, filename, diags.Error())
	}

	var hd hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &hd); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrBadDocument, filename, diags.Error())
	}

	doc := document{
		directed: hd.Directed,
		weighted: hd.Weighted,
		loops:    hd.Loops,
	}
	for _, v := range hd.Vertices {
		doc.vertices = append(doc.vertices, v.ID)
	}
	for i, e := range hd.Edges {
		doc.edges = append(doc.edges, edgeSpec{
			from:   e.From,
			to:     e.To,
			weight: e.Weight,
			pos:    fmt.Sprintf("edge block %d", i),
		})
	}

	return doc.build()
}

// ReadHCLFile reads path and parses it with ReadHCL.
func ReadHCLFile(path string) (*core.Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	return ReadHCL(path, src)
}
