package rowfilter

import (
	"testing"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom"
	"github.com/frankenphp-panel/panel-ui/internal/ui/dom/htmldom"
)

const page = `<html><body>
<input id="search-sites" type="search">
<table id="sites-table">
<thead><tr data-domain="header"><th>Domain</th></tr></thead>
<tbody>
<tr data-domain="shop.example.com"><td>shop.example.com</td><td class="path">/var/www/shop.example.com</td></tr>
<tr data-domain="other.com"><td>other.com</td><td class="path">/srv/Legacy/Blog</td></tr>
<tr data-domain="NoPath.org"><td>NoPath.org</td></tr>
</tbody>
</table>
</body></html>`

func visibleDomains(doc *htmldom.Document) []string {
	var out []string
	for _, row := range doc.All("#sites-table tbody tr") {
		if row.Style("display") != "none" {
			d, _ := row.Attr("data-domain")
			out = append(out, d)
		}
	}
	return out
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name   string
		term   string
		domain string
		path   string
		want   bool
	}{
		{name: "empty term", term: "", domain: "a.com", want: true},
		{name: "domain substring", term: "shop.ex", domain: "Shop.Example.com", want: true},
		{name: "path substring", term: "legacy", domain: "other.com", path: "/srv/Legacy", want: true},
		{name: "no match", term: "zzz", domain: "a.com", path: "/var/www/a.com", want: false},
		{name: "not fuzzy", term: "sxe", domain: "shop.example.com", want: false},
	}
	for _, tc := range cases {
		if got := Matches(tc.term, tc.domain, tc.path); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeTerm(t *testing.T) {
	if got := NormalizeTerm("  Shop.EXAMPLE \t"); got != "shop.example" {
		t.Fatalf("unexpected term %q", got)
	}
}

func TestInputFiltersRows(t *testing.T) {
	doc := htmldom.MustParse(page)
	Wire(htmldom.NewWindow(doc, ""), nil)
	input := doc.ByID("search-sites")

	cases := []struct {
		term string
		want []string
	}{
		{term: "shop.example", want: []string{"shop.example.com"}},
		{term: "  LEGACY ", want: []string{"other.com"}},
		{term: "nopath", want: []string{"NoPath.org"}},
		{term: ".com", want: []string{"shop.example.com", "other.com"}},
		{term: "missing", want: nil},
		{term: "", want: []string{"shop.example.com", "other.com", "NoPath.org"}},
	}
	for _, tc := range cases {
		input.Input(tc.term)
		got := visibleDomains(doc)
		if len(got) != len(tc.want) {
			t.Fatalf("term %q: expected %v got %v", tc.term, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("term %q: expected %v got %v", tc.term, tc.want, got)
			}
		}
	}
	if header := doc.All("thead tr")[0]; header.Style("display") != "" {
		t.Fatalf("header rows must not be filtered")
	}
}

func TestApplyIsIdempotentAndKeepsRows(t *testing.T) {
	doc := htmldom.MustParse(page)
	f := New(doc)
	if f.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Rows())
	}
	rows := doc.All("tbody tr")
	clicks := 0
	rows[1].AddEventListener("click", func(dom.Event) { clicks++ })

	first := f.Apply("shop")
	second := f.Apply("shop")
	if first != 1 || second != 1 {
		t.Fatalf("expected stable visible count, got %d then %d", first, second)
	}
	if !rows[1].Connected() {
		t.Fatalf("hidden rows must stay in the document")
	}
	if f.Apply("") != 3 {
		t.Fatalf("clearing the term should restore all rows")
	}
	rows[1].Click()
	if clicks != 1 {
		t.Fatalf("row listeners must survive filtering")
	}
	if _, ok := rows[0].Attr("style"); ok {
		t.Fatalf("visible rows should have display cleared")
	}
}

func TestRowsAddedLaterAreIgnored(t *testing.T) {
	doc := htmldom.MustParse(page)
	f := New(doc)
	row := doc.CreateElement("tr")
	row.SetAttr("data-domain", "late.com")
	doc.All("tbody")[0].Append(row)
	if f.Apply("zzz") != 0 {
		t.Fatalf("expected all captured rows hidden")
	}
	if row.Style("display") != "" {
		t.Fatalf("late rows are not part of the captured set")
	}
}

func TestMissingAnchorsAreInert(t *testing.T) {
	doc := htmldom.MustParse(`<html><body><input id="search-sites"></body></html>`)
	if New(doc) != nil {
		t.Fatalf("expected nil filter without a table")
	}
	Wire(htmldom.NewWindow(doc, ""), nil)()
	if doc.ByID("search-sites").ListenerCount("input") != 0 {
		t.Fatalf("expected no listeners")
	}
	var f *Filter
	if f.Apply("x") != 0 {
		t.Fatalf("nil filter should report nothing visible")
	}
}

func TestTeardownStopsFiltering(t *testing.T) {
	doc := htmldom.MustParse(page)
	teardown := Wire(htmldom.NewWindow(doc, ""), nil)
	teardown()
	doc.ByID("search-sites").Input("shop")
	if len(visibleDomains(doc)) != 3 {
		t.Fatalf("expected no filtering after teardown")
	}
}
