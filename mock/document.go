package mock

import "github.com/awalczak/mailpost"

var (
	_ mailpost.Parser   = (*Parser)(nil)
	_ mailpost.Document = (*Document)(nil)
	_ mailpost.Node     = (*Node)(nil)
)

// Parser is a mock implementation of mailpost.Parser.
type Parser struct {
	ParseFn func(body string) (mailpost.Document, error)
}

func (p *Parser) Parse(body string) (mailpost.Document, error) {
	return p.ParseFn(body)
}

// Document is a mock implementation of mailpost.Document.
type Document struct {
	SelectFn func(locator string) []mailpost.Node
	LinesFn  func() []string
}

func (d *Document) Select(locator string) []mailpost.Node {
	if d.SelectFn == nil {
		return nil
	}
	return d.SelectFn(locator)
}

func (d *Document) Lines() []string {
	if d.LinesFn == nil {
		return nil
	}
	return d.LinesFn()
}

// Node is a mock implementation of mailpost.Node.
type Node struct {
	TextValue string
	HTMLValue string
	Attrs     map[string]string
}

func (n *Node) Text() string { return n.TextValue }

func (n *Node) HTML() string { return n.HTMLValue }

func (n *Node) Attr(name string) string { return n.Attrs[name] }
