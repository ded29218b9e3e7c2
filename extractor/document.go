package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is an opaque handle to a single DOM element.
type Node any

// Document is the narrow DOM query capability the audit engine consumes.
// Keeping the surface this small means any HTML parser can back it; the
// engine itself never imports a parser.
type Document interface {
	// SelectAll returns every element matching the CSS selector, in
	// document order.
	SelectAll(selector string) []Node
	// Text returns the combined text content of the node.
	Text(n Node) string
	// Attr returns the named attribute, or "" when absent.
	Attr(n Node, name string) string
	// SiblingsAfter returns the element siblings following the node, in
	// document order.
	SiblingsAfter(n Node) []Node
	// Is reports whether the node matches the CSS selector.
	Is(n Node, selector string) bool
}

type goqueryDocument struct {
	doc *goquery.Document
}

// NewDocument wraps a parsed goquery document in the Document capability.
func NewDocument(doc *goquery.Document) Document {
	return &goqueryDocument{doc: doc}
}

// ParseDocument parses html into the Document capability alone, skipping
// the full extraction pass.
func ParseDocument(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return NewDocument(doc), nil
}

func (d *goqueryDocument) SelectAll(selector string) []Node {
	var nodes []Node
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node(s))
	})
	return nodes
}

func (d *goqueryDocument) Text(n Node) string {
	if s, ok := n.(*goquery.Selection); ok {
		return s.Text()
	}
	return ""
}

func (d *goqueryDocument) Attr(n Node, name string) string {
	if s, ok := n.(*goquery.Selection); ok {
		return s.AttrOr(name, "")
	}
	return ""
}

func (d *goqueryDocument) SiblingsAfter(n Node) []Node {
	s, ok := n.(*goquery.Selection)
	if !ok {
		return nil
	}
	var siblings []Node
	s.NextAll().Each(func(_ int, sib *goquery.Selection) {
		siblings = append(siblings, Node(sib))
	})
	return siblings
}

func (d *goqueryDocument) Is(n Node, selector string) bool {
	if s, ok := n.(*goquery.Selection); ok {
		return s.Is(selector)
	}
	return false
}
