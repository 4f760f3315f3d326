//go:build js && wasm

// Package jsdom adapts the live browser page to the dom interfaces.
package jsdom

import (
	"strings"
	"sync"
	"syscall/js"
	"time"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
)

// Window wraps the global browser window.
type Window struct {
	global js.Value
	doc    *Document
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns the window of the page running this module.
func NewWindow() *Window {
	global := js.Global()
	return &Window{global: global, doc: &Document{v: global.Get("document")}}
}

// Document implements dom.Window.
func (w *Window) Document() dom.Document { return w.doc }

// Search returns location.search.
func (w *Window) Search() string {
	loc := w.global.Get("location")
	if !loc.Truthy() {
		return ""
	}
	return loc.Get("search").String()
}

// Confirm shows the native confirmation dialog.
func (w *Window) Confirm(message string) bool {
	return w.global.Call("confirm", message).Truthy()
}

// SetTimeout schedules fn with setTimeout. The callback releases itself.
func (w *Window) SetTimeout(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	w.global.Call("setTimeout", cb, d.Milliseconds())
}

// Document wraps the global document.
type Document struct {
	v js.Value
}

var _ dom.Document = (*Document)(nil)

func wrap(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &Element{v: v}
}

func wrapAll(list js.Value) []dom.Element {
	if !list.Truthy() {
		return nil
	}
	length := list.Get("length").Int()
	out := make([]dom.Element, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

// QuerySelectorAll implements dom.Document.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return wrapAll(d.v.Call("querySelectorAll", selector))
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	return wrap(d.v.Get("body"))
}

// DocumentElement implements dom.Document.
func (d *Document) DocumentElement() dom.Element {
	return wrap(d.v.Get("documentElement"))
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

var _ dom.Element = (*Element)(nil)

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

// Attr implements dom.Element.
func (e *Element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

// SetAttr implements dom.Element.
func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// HasClass implements dom.Element.
func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

// AddClass implements dom.Element.
func (e *Element) AddClass(names ...string) {
	classList := e.v.Get("classList")
	for _, name := range names {
		for _, field := range strings.Fields(name) {
			classList.Call("add", field)
		}
	}
}

// Style implements dom.Element.
func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

// SetStyle implements dom.Element.
func (e *Element) SetStyle(prop, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", prop)
		return
	}
	style.Call("setProperty", prop, value)
}

// Text implements dom.Element.
func (e *Element) Text() string {
	text := e.v.Get("textContent")
	if text.Type() != js.TypeString {
		return ""
	}
	return text.String()
}

// SetText implements dom.Element.
func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// Value implements dom.Element.
func (e *Element) Value() string {
	value := e.v.Get("value")
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}

// Append implements dom.Element.
func (e *Element) Append(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	e.v.Call("appendChild", c.v)
}

// Remove implements dom.Element.
func (e *Element) Remove() {
	e.v.Call("remove")
}

// QuerySelector implements dom.Element.
func (e *Element) QuerySelector(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector))
}

// QuerySelectorAll implements dom.Element.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return wrapAll(e.v.Call("querySelectorAll", selector))
}

// AddEventListener binds fn as a js.Func. The remover detaches and releases it.
func (e *Element) AddEventListener(eventType string, fn dom.Listener) func() {
	if fn == nil {
		return func() {}
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&Event{v: args[0]})
		}
		return nil
	})
	e.v.Call("addEventListener", eventType, cb)
	var once sync.Once
	return func() {
		once.Do(func() {
			e.v.Call("removeEventListener", eventType, cb)
			cb.Release()
		})
	}
}

// Submit calls form.submit(), which skips the submit event.
func (e *Element) Submit() {
	e.v.Call("submit")
}

// Event wraps a DOM event.
type Event struct {
	v js.Value
}

var _ dom.Event = (*Event)(nil)

// Type implements dom.Event.
func (ev *Event) Type() string { return ev.v.Get("type").String() }

// PreventDefault implements dom.Event.
func (ev *Event) PreventDefault() { ev.v.Call("preventDefault") }

// DefaultPrevented implements dom.Event.
func (ev *Event) DefaultPrevented() bool { return ev.v.Get("defaultPrevented").Bool() }
