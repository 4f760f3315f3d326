// Package htmldom is an in-memory dom.Document backed by golang.org/x/net/html.
// Selectors are evaluated with goquery. Events dispatch synchronously to the
// listeners registered on the target element, and form submissions are
// recorded instead of sent. A Document is not safe for concurrent use.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
)

// Submission records a form leaving the page.
type Submission struct {
	Method string
	Action string
	// Attached reports whether the form was connected to the document.
	Attached bool
	// Native is true for user-initiated submits that fired the submit event.
	Native bool
}

// Document wraps a parsed HTML tree.
type Document struct {
	root        *html.Node
	elements    map[*html.Node]*Element
	submissions []Submission
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root, elements: make(map[*html.Node]*Element)}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// MustParse parses src and panics on error. Intended for fixtures.
func MustParse(src string) *Document {
	doc, err := ParseString(src)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

func (d *Document) element(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// ByID returns the concrete element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return d.wrap(findNode(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	}))
}

// All returns the concrete elements matching selector in document order.
func (d *Document) All(selector string) []*Element {
	nodes := goquery.NewDocumentFromNode(d.root).Find(selector).Nodes
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	if el := d.ByID(id); el != nil {
		return el
	}
	return nil
}

// QuerySelectorAll implements dom.Document.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return toInterfaces(d.All(selector))
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.wrap(n)
}

// Body returns the body element, or nil for a fragment without one.
func (d *Document) Body() dom.Element {
	n := findNode(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	return d.element(n)
}

// DocumentElement returns the root html element, or nil once it is removed.
func (d *Document) DocumentElement() dom.Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

// Submissions returns every recorded form submission in order.
func (d *Document) Submissions() []Submission {
	return append([]Submission(nil), d.submissions...)
}

// Render serializes the current tree.
func (d *Document) Render() string {
	var b strings.Builder
	_ = html.Render(&b, d.root)
	return b.String()
}

func (d *Document) contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

func (d *Document) recordSubmission(form *Element, native bool) {
	method, _ := form.Attr("method")
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = "GET"
	}
	action, _ := form.Attr("action")
	d.submissions = append(d.submissions, Submission{
		Method:   method,
		Action:   action,
		Attached: d.contains(form.node),
		Native:   native,
	})
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func toInterfaces(els []*Element) []dom.Element {
	out := make([]dom.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}
