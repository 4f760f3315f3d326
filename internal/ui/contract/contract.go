// Package contract checks a rendered panel page for the anchors the UI
// behaviors look for, so template changes that silently disable a behavior
// show up before they ship.
package contract

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/frankenphp-panel/panel-ui/internal/ui/busy"
	"github.com/frankenphp-panel/panel-ui/internal/ui/guard"
	"github.com/frankenphp-panel/panel-ui/internal/ui/notify"
	"github.com/frankenphp-panel/panel-ui/internal/ui/rowfilter"
)

// Status classifies a finding.
type Status string

const (
	// Found means the anchor is present and well formed.
	Found Status = "found"
	// Missing means the anchor is absent and the behavior stays inert.
	Missing Status = "missing"
	// Invalid means the anchor is present but the behavior will act on
	// malformed data.
	Invalid Status = "invalid"
)

// Finding is the result of checking one anchor.
type Finding struct {
	Component string `json:"component"`
	Anchor    string `json:"anchor"`
	Status    Status `json:"status"`
	Count     int    `json:"count"`
	Detail    string `json:"detail,omitempty"`
}

// Report lists every finding for a page.
type Report struct {
	Findings []Finding `json:"findings"`
}

// Count returns the number of findings with status.
func (r Report) Count(status Status) int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Valid reports whether no anchor is malformed.
func (r Report) Valid() bool {
	return r.Count(Invalid) == 0
}

// Complete reports whether every anchor is present and well formed.
func (r Report) Complete() bool {
	return r.Valid() && r.Count(Missing) == 0
}

// Write prints one line per finding.
func (r Report) Write(w io.Writer) error {
	for _, f := range r.Findings {
		line := fmt.Sprintf("%-9s %-8s %-22s x%d", f.Component, f.Status, f.Anchor, f.Count)
		if f.Detail != "" {
			line += "  " + f.Detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// Parse reads a page and checks it.
func Parse(r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse page: %w", err)
	}
	return Check(doc), nil
}

// Check inspects doc for every behavior's anchors.
func Check(doc *goquery.Document) Report {
	var r Report
	r.Findings = append(r.Findings, byID(doc, "notify", notify.ContainerID))
	for _, p := range busy.Pairings {
		r.Findings = append(r.Findings, byID(doc, "busy", p.FormID))
		r.Findings = append(r.Findings, byID(doc, "busy", p.ButtonID))
	}
	r.Findings = append(r.Findings, checkRowFilter(doc)...)
	r.Findings = append(r.Findings, checkGuard(doc))
	return r
}

func byID(doc *goquery.Document, component, id string) Finding {
	n := 0
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if v, _ := s.Attr("id"); v == id {
			n++
		}
	})
	f := Finding{Component: component, Anchor: "#" + id, Status: Found, Count: n}
	switch {
	case n == 0:
		f.Status = Missing
	case n > 1:
		f.Detail = "duplicate id, the first element wins"
	}
	return f
}

func checkRowFilter(doc *goquery.Document) []Finding {
	input := byID(doc, "rowfilter", rowfilter.InputID)
	table := byID(doc, "rowfilter", rowfilter.TableID)
	findings := []Finding{input, table}
	if table.Status == Missing {
		return findings
	}
	rows := doc.Find("#" + rowfilter.TableID).First().Find(rowfilter.RowSelector)
	rowsFinding := Finding{Component: "rowfilter", Anchor: rowfilter.RowSelector, Status: Found, Count: rows.Length()}
	noDomain, noPath := 0, 0
	rows.Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr(rowfilter.DomainAttr); !ok {
			noDomain++
		}
		if s.Find(rowfilter.PathSelector).Length() == 0 {
			noPath++
		}
	})
	switch {
	case noDomain > 0:
		rowsFinding.Status = Invalid
		rowsFinding.Detail = fmt.Sprintf("%d row(s) without %s", noDomain, rowfilter.DomainAttr)
	case noPath > 0:
		rowsFinding.Detail = fmt.Sprintf("%d row(s) without a %s cell", noPath, rowfilter.PathSelector)
	}
	return append(findings, rowsFinding)
}

func checkGuard(doc *goquery.Document) Finding {
	triggers := doc.Find(guard.TriggerSelector)
	f := Finding{Component: "guard", Anchor: guard.TriggerSelector, Status: Found, Count: triggers.Length()}
	if f.Count == 0 {
		f.Status = Missing
		return f
	}
	noID, noDomain := 0, 0
	triggers.Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("data-id"); !ok {
			noID++
		}
		if v, _ := s.Attr("data-domain"); v == "" {
			noDomain++
		}
	})
	switch {
	case noID > 0:
		f.Status = Invalid
		f.Detail = fmt.Sprintf("%d trigger(s) without data-id post to %s", noID, guard.DeleteAction(guard.MissingID))
	case noDomain > 0:
		f.Detail = fmt.Sprintf("%d trigger(s) without data-domain prompt for %q", noDomain, guard.DefaultDomain)
	}
	return f
}
