// Error definitions shared by the graphio codecs.

package graphio

import "errors"

// Sentinel errors for document loading.
var (
	// ErrEmptyDocument is returned when the source contains no document:
	// an empty reader, a blank file, or a YAML stream with nothing in it.
	ErrEmptyDocument = errors.New("graphio: empty document")

	// ErrBadDocument is returned when the source cannot be decoded in its
	// declared format: a syntax error or an unknown field.
	ErrBadDocument = errors.New("graphio: malformed document")

	// ErrBadHeader is returned when a text document's first line is
	// neither "D" nor "G".
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadVertex is returned when a vertex entry cannot be added to the
	// graph; the core sentinel that rejected it is wrapped alongside.
	ErrBadVertex = errors.New("graphio: bad vertex")

	// ErrBadEdge is returned when an edge line cannot be parsed or the
	// edge cannot be added; construction failures wrap the core sentinel
	// alongside, so errors.Is answers for both.
	ErrBadEdge = errors.New("graphio: bad edge")
)
