// Package app composes the panel UI behaviors. Every initializer is
// independent: they share no state and may run in any order.
package app

import (
	"github.com/frankenphp-panel/panel-ui/internal/ui/busy"
	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/internal/ui/guard"
	"github.com/frankenphp-panel/panel-ui/internal/ui/notify"
	"github.com/frankenphp-panel/panel-ui/internal/ui/rowfilter"
	"github.com/frankenphp-panel/panel-ui/logging"
)

// WireFunc attaches a behavior to the page and returns its teardown.
type WireFunc func(win dom.Window, log *logging.Logger) (teardown func())

// Initializer is a named behavior.
type Initializer struct {
	Name string
	Wire WireFunc
}

// Initializers returns the panel behaviors in mount order.
func Initializers() []Initializer {
	return []Initializer{
		{Name: "notify", Wire: notify.Wire},
		{Name: "busy", Wire: busy.Wire},
		{Name: "rowfilter", Wire: rowfilter.Wire},
		{Name: "guard", Wire: guard.Wire},
	}
}

// Mount runs inits (all Initializers when none are given) against win and
// returns a teardown that unwinds them in reverse order. Teardown may be
// called more than once.
func Mount(win dom.Window, log *logging.Logger, inits ...Initializer) func() {
	if len(inits) == 0 {
		inits = Initializers()
	}
	teardowns := make([]func(), 0, len(inits))
	for _, item := range inits {
		if item.Wire == nil {
			continue
		}
		teardowns = append(teardowns, item.Wire(win, log))
	}
	log.Debug("ui", "panel behaviors mounted", map[string]any{"count": len(teardowns)})
	return func() {
		for i := len(teardowns) - 1; i >= 0; i-- {
			if teardowns[i] != nil {
				teardowns[i]()
			}
		}
		teardowns = nil
	}
}
