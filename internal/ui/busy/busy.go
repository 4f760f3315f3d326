// Package busy marks a form's submit button as loading the moment the form
// is submitted, so the user sees the request is in flight.
package busy

import (
	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/logging"
)

// LoadingClass is added to the button of a submitted form.
const LoadingClass = "loading"

// Pairing ties a form to the button that shows its busy state.
type Pairing struct {
	FormID   string
	ButtonID string
}

// Pairings lists the panel forms that get submit feedback.
var Pairings = []Pairing{
	{FormID: "login-form", ButtonID: "login-btn"},
	{FormID: "add-site-form", ButtonID: "add-site-btn"},
	{FormID: "add-database-form", ButtonID: "add-db-btn"},
}

// MarkBusy applies the loading state to btn. A nil btn is ignored.
func MarkBusy(btn dom.Element) {
	if btn == nil {
		return
	}
	btn.AddClass(LoadingClass)
	btn.SetAttr("aria-busy", "true")
}

// Wire subscribes to the submit event of every paired form present on the
// page. The button is looked up when the form is submitted. Native
// submission always proceeds.
func Wire(win dom.Window, log *logging.Logger) func() {
	doc := win.Document()
	var removers []func()
	for _, p := range Pairings {
		form := doc.GetElementByID(p.FormID)
		if form == nil {
			log.Debug("ui", "form missing, submit feedback skipped", map[string]any{"anchor": p.FormID})
			continue
		}
		buttonID := p.ButtonID
		removers = append(removers, form.AddEventListener("submit", func(dom.Event) {
			MarkBusy(doc.GetElementByID(buttonID))
		}))
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
		removers = nil
	}
}
