// Package goquery implements the mailpost document capability using CSS
// selectors via PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalczak/mailpost"
	"golang.org/x/net/html"
)

// Ensure interfaces are implemented at compile time.
var (
	_ mailpost.Parser   = (*Parser)(nil)
	_ mailpost.Document = (*Document)(nil)
	_ mailpost.Node     = (*node)(nil)
)

// Parser parses email bodies into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses an HTML or plain-text body. The underlying html5 parser is
// lenient, so EINVALID is rare; plain text parses into a body-only tree.
func (p *Parser) Parse(body string) (mailpost.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, mailpost.Errorf(mailpost.EINVALID, "failed to parse body: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Select returns the nodes matching a CSS locator in document order.
// goquery treats an invalid selector as matching nothing, which is
// exactly the degradation the pipeline wants.
func (d *Document) Select(locator string) []mailpost.Node {
	var nodes []mailpost.Node
	d.doc.Find(locator).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &node{sel: sel})
	})
	return nodes
}

// Lines flattens the document to a line sequence, breaking at block
// elements so sibling paragraphs don't run together the way a plain
// text() call would render them.
func (d *Document) Lines() []string {
	var sb strings.Builder
	for _, root := range d.doc.Nodes {
		flatten(root, &sb)
	}
	return strings.Split(sb.String(), "\n")
}

// blockTags are elements that terminate a line when flattening.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "blockquote": true,
}

// skipTags contribute no text.
var skipTags = map[string]bool{
	"script": true, "style": true, "head": true, "title": true,
}

func flatten(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, sb)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}

type node struct {
	sel *goquery.Selection
}

func (n *node) Text() string {
	return n.sel.Text()
}

func (n *node) HTML() string {
	h, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return h
}

func (n *node) Attr(name string) string {
	v, _ := n.sel.Attr(name)
	return v
}
