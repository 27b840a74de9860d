package mailpost

// Node is a single element in a parsed email body.
type Node interface {
	// Text returns the node's text content with descendant text included.
	Text() string

	// HTML returns the node's inner HTML, or "" when it cannot be rendered.
	HTML() string

	// Attr returns the named attribute, or "" when absent.
	Attr(name string) string
}

// Document is a minimal querying capability over a parsed email body.
// The extraction logic depends on this interface only, so it stays
// independent of any specific markup-parsing library.
type Document interface {
	// Select returns the nodes matching a CSS locator, in document order.
	// An invalid or unmatched locator yields no nodes, never an error.
	Select(locator string) []Node

	// Lines flattens the document to a line sequence, breaking at block
	// elements, for the heuristic content scan.
	Lines() []string
}

// Parser parses a raw email body into a Document.
type Parser interface {
	// Parse returns EINVALID when the body cannot be parsed as markup.
	// Callers degrade to treating the body as flat text.
	Parse(body string) (Document, error)
}
