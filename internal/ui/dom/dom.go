// Package dom describes the slice of the browser page the panel UI behaviors
// operate on. Components receive a Window explicitly instead of reaching for
// js.Global, so they can be mounted against the live page or a parsed fixture.
package dom

import "time"

// Event is the subset of a DOM event the behaviors need.
type Event interface {
	Type() string
	PreventDefault()
	DefaultPrevented() bool
}

// Listener handles a dispatched event.
type Listener func(Event)

// Element is a single DOM element. Implementations must return a nil
// Element (not a typed nil) for lookups that find nothing.
type Element interface {
	TagName() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	HasClass(name string) bool
	AddClass(names ...string)
	Style(prop string) string
	// SetStyle sets an inline style property; an empty value clears it.
	SetStyle(prop, value string)
	Text() string
	SetText(text string)
	Value() string
	Append(child Element)
	// Remove detaches the element from its parent. Detached elements ignore it.
	Remove()
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	AddEventListener(eventType string, fn Listener) (remove func())
	// Submit submits a form element without firing its submit event.
	Submit()
}

// Document is the page document.
type Document interface {
	GetElementByID(id string) Element
	QuerySelectorAll(selector string) []Element
	CreateElement(tag string) Element
	Body() Element
	// DocumentElement returns the root <html> element, or nil.
	DocumentElement() Element
}

// Window groups the browser services the behaviors depend on.
type Window interface {
	Document() Document
	// Search returns location.search, including the leading "?" when present.
	Search() string
	// Confirm shows a blocking confirmation prompt.
	Confirm(message string) bool
	// SetTimeout schedules fn once after d. Scheduled callbacks cannot be cancelled.
	SetTimeout(d time.Duration, fn func())
}

// DataAttr reads a data-* attribute, reporting whether it was present.
func DataAttr(el Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	return el.Attr("data-" + name)
}
