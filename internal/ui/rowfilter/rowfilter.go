// Package rowfilter filters the rows of the sites table against the search
// box without a round trip to the server.
package rowfilter

import (
	"strings"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/logging"
)

const (
	// InputID is the search box the filter listens to.
	InputID = "search-sites"
	// TableID is the table whose rows are filtered.
	TableID = "sites-table"
	// RowSelector picks the filterable rows inside the table.
	RowSelector = "tbody tr"
	// PathSelector is the cell holding the site's document root.
	PathSelector = ".path"
	// DomainAttr carries the row's domain name.
	DomainAttr = "data-domain"
)

// NormalizeTerm lower-cases and trims a raw search term.
func NormalizeTerm(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// Matches reports whether a row with domain and path is shown for the
// normalized term.
func Matches(term, domain, path string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(domain), term) ||
		strings.Contains(strings.ToLower(path), term)
}

// Filter toggles the rows captured when it was created. Rows added to the
// table later are not filtered.
type Filter struct {
	input dom.Element
	rows  []dom.Element
}

// New captures the table body rows. It returns nil when the search input or
// the table is missing.
func New(doc dom.Document) *Filter {
	input := doc.GetElementByID(InputID)
	table := doc.GetElementByID(TableID)
	if input == nil || table == nil {
		return nil
	}
	return &Filter{input: input, rows: table.QuerySelectorAll(RowSelector)}
}

// Rows returns the number of captured rows.
func (f *Filter) Rows() int {
	if f == nil {
		return 0
	}
	return len(f.rows)
}

// Apply shows the rows matching raw and hides the rest, returning how many
// remain visible.
func (f *Filter) Apply(raw string) int {
	if f == nil {
		return 0
	}
	term := NormalizeTerm(raw)
	visible := 0
	for _, row := range f.rows {
		domain, _ := row.Attr(DomainAttr)
		path := ""
		if cell := row.QuerySelector(PathSelector); cell != nil {
			path = cell.Text()
		}
		if Matches(term, domain, path) {
			row.SetStyle("display", "")
			visible++
			continue
		}
		row.SetStyle("display", "none")
	}
	return visible
}

// Wire re-applies the filter on every input event of the search box.
func Wire(win dom.Window, log *logging.Logger) func() {
	f := New(win.Document())
	if f == nil {
		log.Debug("ui", "search input or sites table missing, row filter disabled", map[string]any{
			"anchors": []string{InputID, TableID},
		})
		return func() {}
	}
	remove := f.input.AddEventListener("input", func(dom.Event) {
		f.Apply(f.input.Value())
	})
	return remove
}
