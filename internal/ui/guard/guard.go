// Package guard asks for confirmation before a site is deleted and then
// performs the deletion as a form POST, never as a plain link.
package guard

import (
	"fmt"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/logging"
)

const (
	// TriggerSelector matches the delete buttons rendered next to each site.
	TriggerSelector = ".btn-delete-site"
	// DefaultDomain names the site in the prompt when data-domain is absent.
	DefaultDomain = "this site"
	// MissingID is used in the action path when data-id is absent. The server
	// rejects it.
	MissingID = "undefined"
)

// PendingDeletion is the site a trigger asks to delete.
type PendingDeletion struct {
	ID     string
	Domain string
}

// FromTrigger reads the deletion target from a trigger's data attributes.
func FromTrigger(el dom.Element) PendingDeletion {
	id, ok := dom.DataAttr(el, "id")
	if !ok {
		id = MissingID
	}
	domain, _ := dom.DataAttr(el, "domain")
	if domain == "" {
		domain = DefaultDomain
	}
	return PendingDeletion{ID: id, Domain: domain}
}

// ConfirmMessage lists what deleting domain destroys.
func ConfirmMessage(domain string) string {
	return fmt.Sprintf("Delete site “%s”?\n\n"+
		"This will permanently:\n"+
		"• Delete all files and folders for this site (e.g. /var/www/%s)\n"+
		"• Remove the Caddy/FrankenPHP config for this site\n"+
		"• Delete all databases and database users associated with this site\n\n"+
		"This cannot be undone.", domain, domain)
}

// DeleteAction returns the POST target for id. The id is used verbatim.
func DeleteAction(id string) string {
	return "/sites/" + id + "/delete"
}

// Submit builds a POST form for p, attaches it to the body, and submits it.
// Without a body the form goes under the document element. A browser ignores
// submit on a detached form, so when neither exists nothing is submitted and
// Submit returns false.
func Submit(doc dom.Document, p PendingDeletion) bool {
	parent := doc.Body()
	if parent == nil {
		parent = doc.DocumentElement()
	}
	if parent == nil {
		return false
	}
	form := doc.CreateElement("form")
	form.SetAttr("method", "POST")
	form.SetAttr("action", DeleteAction(p.ID))
	parent.Append(form)
	form.Submit()
	return true
}

// Wire attaches the confirmation handler to every delete trigger present on
// the page. Triggers added later are not guarded.
func Wire(win dom.Window, log *logging.Logger) func() {
	doc := win.Document()
	triggers := doc.QuerySelectorAll(TriggerSelector)
	if len(triggers) == 0 {
		log.Debug("ui", "no delete triggers on page", map[string]any{"anchor": TriggerSelector})
	}
	removers := make([]func(), 0, len(triggers))
	for _, trigger := range triggers {
		el := trigger
		removers = append(removers, el.AddEventListener("click", func(ev dom.Event) {
			ev.PreventDefault()
			pending := FromTrigger(el)
			if !win.Confirm(ConfirmMessage(pending.Domain)) {
				return
			}
			log.Info("ui", "submitting site deletion", map[string]any{"site_id": pending.ID, "domain": pending.Domain})
			if !Submit(doc, pending) {
				log.Debug("ui", "no element to attach the delete form to", map[string]any{"site_id": pending.ID})
			}
		}))
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
		removers = nil
	}
}
