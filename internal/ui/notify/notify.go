// Package notify renders transient status toasts and turns the one-shot
// query flags the panel appends after a redirect into toasts on page load.
package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/logging"
)

// Kind selects the visual treatment of a toast.
type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	if k == Failure {
		return "failure"
	}
	return "success"
}

const (
	// ContainerID is the element toasts are appended to.
	ContainerID = "toast-container"
	// DisplayDuration is how long a toast stays fully visible.
	DisplayDuration = 4000 * time.Millisecond
	// FadeDuration is the exit transition before the node is removed.
	FadeDuration = 200 * time.Millisecond
)

const (
	baseClass    = "rounded-lg text-white px-4 py-3 text-sm font-medium shadow-lg ring-1 ring-black/5"
	successClass = "bg-emerald-600 " + baseClass
	failureClass = "bg-red-600 " + baseClass
)

// ClassFor returns the class list applied to toasts of kind.
func ClassFor(kind Kind) string {
	if kind == Failure {
		return failureClass
	}
	return successClass
}

// Toast is a message waiting to be shown.
type Toast struct {
	Message string
	Kind    Kind
}

type flagToast struct {
	flag    string
	message string
}

// flagToasts is checked in order; every set flag produces a toast.
var flagToasts = []flagToast{
	{flag: "created", message: "Site created successfully."},
	{flag: "deleted", message: "Site deleted."},
	{flag: "db_created", message: "Database created successfully."},
	{flag: "restarted", message: "Site restart requested."},
}

// ToastsForFlags returns the toasts implied by the recognised flags.
func ToastsForFlags(flags Flags) []Toast {
	var toasts []Toast
	for _, ft := range flagToasts {
		if flags.IsSet(ft.flag) {
			toasts = append(toasts, Toast{Message: ft.message, Kind: Success})
		}
	}
	return toasts
}

// Center appends toasts to the page's toast container. A nil *Center is
// valid and shows nothing.
type Center struct {
	win       dom.Window
	container dom.Element
	log       *logging.Logger
}

// New locates the toast container. It returns nil when the page has none.
func New(win dom.Window, log *logging.Logger) *Center {
	container := win.Document().GetElementByID(ContainerID)
	if container == nil {
		log.Debug("ui", "toast container missing, notifications disabled", map[string]any{"anchor": ContainerID})
		return nil
	}
	return &Center{win: win, container: container, log: log}
}

// Show appends a toast and schedules its fade and removal.
func (c *Center) Show(message string, kind Kind) {
	if c == nil {
		return
	}
	doc := c.win.Document()
	toast := doc.CreateElement("div")
	toast.SetAttr("role", "alert")
	toast.SetAttr("class", ClassFor(kind))
	toast.SetAttr("data-toast-id", uuid.NewString())
	toast.SetAttr("data-toast-kind", kind.String())
	toast.SetText(message)
	c.container.Append(toast)

	c.win.SetTimeout(DisplayDuration, func() {
		toast.SetStyle("opacity", "0")
		toast.SetStyle("transform", "translateX(0.5rem)")
		toast.SetStyle("transition", "opacity 0.2s, transform 0.2s")
		c.win.SetTimeout(FadeDuration, toast.Remove)
	})
}

// ShowAll shows toasts in order.
func (c *Center) ShowAll(toasts []Toast) {
	for _, t := range toasts {
		c.Show(t.Message, t.Kind)
	}
}

// Wire shows the toasts requested by the current URL. It registers no
// listeners, so the returned teardown does nothing; pending dismiss timers
// still run.
func Wire(win dom.Window, log *logging.Logger) func() {
	center := New(win, log)
	if center == nil {
		return func() {}
	}
	toasts := ToastsForFlags(ParseFlags(win.Search()))
	if len(toasts) > 0 {
		log.Debug("ui", "showing flag toasts", map[string]any{"count": len(toasts)})
	}
	center.ShowAll(toasts)
	return func() {}
}
