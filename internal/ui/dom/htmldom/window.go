package htmldom

import (
	"sort"
	"time"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
)

// Window pairs a Document with a scripted location, confirmation prompt, and
// a virtual clock. Timers only run when Advance is called.
type Window struct {
	doc    *Document
	search string

	// ConfirmFunc answers confirmation prompts. A nil func declines.
	ConfirmFunc func(message string) bool
	prompts     []string

	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns a window showing doc with the given location.search.
func NewWindow(doc *Document, search string) *Window {
	return &Window{doc: doc, search: search}
}

// Document implements dom.Window.
func (w *Window) Document() dom.Document { return w.doc }

// Doc returns the concrete document.
func (w *Window) Doc() *Document { return w.doc }

// Search implements dom.Window.
func (w *Window) Search() string { return w.search }

// Confirm records the prompt and answers it with ConfirmFunc.
func (w *Window) Confirm(message string) bool {
	w.prompts = append(w.prompts, message)
	if w.ConfirmFunc == nil {
		return false
	}
	return w.ConfirmFunc(message)
}

// Prompts returns every confirmation message shown so far.
func (w *Window) Prompts() []string {
	return append([]string(nil), w.prompts...)
}

// SetTimeout schedules fn on the virtual clock.
func (w *Window) SetTimeout(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	w.seq++
	w.timers = append(w.timers, &timer{at: w.now + d, seq: w.seq, fn: fn})
}

// Now returns the virtual time elapsed since the window was created.
func (w *Window) Now() time.Duration { return w.now }

// PendingTimers returns the number of scheduled callbacks not yet run.
func (w *Window) PendingTimers() int { return len(w.timers) }

// Advance moves the clock forward by d, running due callbacks in order.
// Callbacks scheduled while advancing run too if they fall due before the
// new time.
func (w *Window) Advance(d time.Duration) {
	target := w.now + d
	for {
		next := w.popDue(target)
		if next == nil {
			break
		}
		w.now = next.at
		next.fn()
	}
	w.now = target
}

func (w *Window) popDue(limit time.Duration) *timer {
	if len(w.timers) == 0 {
		return nil
	}
	sort.SliceStable(w.timers, func(i, j int) bool {
		if w.timers[i].at != w.timers[j].at {
			return w.timers[i].at < w.timers[j].at
		}
		return w.timers[i].seq < w.timers[j].seq
	})
	first := w.timers[0]
	if first.at > limit {
		return nil
	}
	w.timers = w.timers[1:]
	return first
}
