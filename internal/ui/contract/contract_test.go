package contract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/frankenphp-panel/panel-ui/web"
)

func findingFor(t *testing.T, r Report, anchor string) Finding {
	t.Helper()
	for _, f := range r.Findings {
		if f.Anchor == anchor {
			return f
		}
	}
	t.Fatalf("no finding for %q in %+v", anchor, r.Findings)
	return Finding{}
}

func TestDevPageIsComplete(t *testing.T) {
	report, err := Parse(strings.NewReader(web.IndexHTML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !report.Complete() {
		var buf bytes.Buffer
		_ = report.Write(&buf)
		t.Fatalf("expected dev page to satisfy every anchor:\n%s", buf.String())
	}
	if f := findingFor(t, report, ".btn-delete-site"); f.Count != 3 {
		t.Fatalf("expected 3 delete triggers, got %+v", f)
	}
	if f := findingFor(t, report, "tbody tr"); f.Count != 3 {
		t.Fatalf("expected 3 rows, got %+v", f)
	}
}

func TestPartialPage(t *testing.T) {
	page := `<html><body>
<div id="toast-container"></div><div id="toast-container"></div>
<form id="login-form"><button id="login-btn"></button></form>
<input id="search-sites">
<table id="sites-table"><tbody><tr><td>x</td></tr></tbody></table>
<button class="btn-delete-site" data-domain="a.com"></button>
</body></html>`
	report, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if report.Valid() || report.Complete() {
		t.Fatalf("expected invalid report")
	}
	cases := []struct {
		anchor string
		status Status
		detail string
	}{
		{anchor: "#toast-container", status: Found, detail: "duplicate id"},
		{anchor: "#login-form", status: Found},
		{anchor: "#add-site-form", status: Missing},
		{anchor: "#add-db-btn", status: Missing},
		{anchor: "tbody tr", status: Invalid, detail: "without data-domain"},
		{anchor: ".btn-delete-site", status: Invalid, detail: "/sites/undefined/delete"},
	}
	for _, tc := range cases {
		f := findingFor(t, report, tc.anchor)
		if f.Status != tc.status || !strings.Contains(f.Detail, tc.detail) {
			t.Fatalf("%s: expected %s %q, got %+v", tc.anchor, tc.status, tc.detail, f)
		}
	}
}

func TestMissingTableSkipsRowCheck(t *testing.T) {
	report, err := Parse(strings.NewReader(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, f := range report.Findings {
		if f.Anchor == "tbody tr" {
			t.Fatalf("row finding should be skipped without a table")
		}
		if f.Status != Missing {
			t.Fatalf("expected every anchor missing, got %+v", f)
		}
	}
	if !report.Valid() {
		t.Fatalf("missing anchors are not malformed")
	}
}
