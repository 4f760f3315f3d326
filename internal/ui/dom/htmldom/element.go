package htmldom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
)

// Element is a node of a Document. The same *html.Node always maps to the
// same *Element, so listeners survive repeated lookups.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[string][]*listener
}

type listener struct {
	fn dom.Listener
}

var _ dom.Element = (*Element)(nil)

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return e.node.Data }

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return attr(e.node, strings.ToLower(name))
}

// SetAttr adds or replaces an attribute.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	out := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		out = append(out, a)
	}
	e.node.Attr = out
}

func (e *Element) classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return containsClass(e.classes(), name)
}

// AddClass appends classes that are not already present.
func (e *Element) AddClass(names ...string) {
	list := e.classes()
	for _, name := range names {
		for _, field := range strings.Fields(name) {
			if !containsClass(list, field) {
				list = append(list, field)
			}
		}
	}
	e.SetAttr("class", strings.Join(list, " "))
}

func containsClass(list []string, name string) bool {
	for _, c := range list {
		if c == name {
			return true
		}
	}
	return false
}

// Style returns an inline style property.
func (e *Element) Style(prop string) string {
	v, _ := e.Attr("style")
	return dom.LookupStyle(dom.ParseStyle(v), prop)
}

// SetStyle writes an inline style property; "" clears it.
func (e *Element) SetStyle(prop, value string) {
	v, _ := e.Attr("style")
	formatted := dom.FormatStyle(dom.WithStyle(dom.ParseStyle(v), prop, value))
	if formatted == "" {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatted)
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Value returns the current value of a form control.
func (e *Element) Value() string {
	if e.node.DataAtom == atom.Textarea {
		return e.Text()
	}
	v, _ := e.Attr("value")
	return v
}

// SetValue updates the value of a form control without firing events.
func (e *Element) SetValue(value string) {
	if e.node.DataAtom == atom.Textarea {
		e.SetText(value)
		return
	}
	e.SetAttr("value", value)
}

// Append moves child to the end of e's children.
func (e *Element) Append(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.doc != e.doc || c == e {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
}

// Connected reports whether e is attached to its document.
func (e *Element) Connected() bool {
	return e.doc.contains(e.node)
}

// QuerySelector returns the first matching descendant or nil.
func (e *Element) QuerySelector(selector string) dom.Element {
	nodes := goquery.NewDocumentFromNode(e.node).Find(selector).Nodes
	if len(nodes) == 0 {
		return nil
	}
	return e.doc.wrap(nodes[0])
}

// QuerySelectorAll returns matching descendants in document order.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	nodes := goquery.NewDocumentFromNode(e.node).Find(selector).Nodes
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.doc.wrap(n))
	}
	return out
}

// AddEventListener registers fn for eventType and returns its remover.
func (e *Element) AddEventListener(eventType string, fn dom.Listener) func() {
	if fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[eventType] = append(e.listeners[eventType], l)
	return func() {
		list := e.listeners[eventType]
		for i, existing := range list {
			if existing == l {
				e.listeners[eventType] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns how many listeners are registered for eventType.
func (e *Element) ListenerCount(eventType string) int {
	return len(e.listeners[eventType])
}

// Submit records a programmatic submission of a form element.
func (e *Element) Submit() {
	if e.node.DataAtom != atom.Form {
		return
	}
	e.doc.recordSubmission(e, false)
}

// Dispatch delivers an event of eventType to e's listeners.
func (e *Element) Dispatch(eventType string) *Event {
	ev := &Event{typ: eventType}
	snapshot := append([]*listener(nil), e.listeners[eventType]...)
	for _, l := range snapshot {
		l.fn(ev)
	}
	return ev
}

// Click dispatches a click event.
func (e *Element) Click() *Event {
	return e.Dispatch("click")
}

// Input sets the control value and dispatches an input event.
func (e *Element) Input(value string) *Event {
	e.SetValue(value)
	return e.Dispatch("input")
}

// SubmitForm performs a user-initiated submit: the submit event fires, and
// unless a listener prevented it the submission is recorded.
func (e *Element) SubmitForm() bool {
	if e.node.DataAtom != atom.Form {
		return false
	}
	if ev := e.Dispatch("submit"); ev.DefaultPrevented() {
		return false
	}
	e.doc.recordSubmission(e, true)
	return true
}

// Event is a synchronously dispatched event.
type Event struct {
	typ       string
	prevented bool
}

var _ dom.Event = (*Event)(nil)

// Type returns the event type.
func (ev *Event) Type() string { return ev.typ }

// PreventDefault marks the default action as cancelled.
func (ev *Event) PreventDefault() { ev.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.prevented }
