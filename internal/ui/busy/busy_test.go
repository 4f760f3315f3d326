package busy

import (
	"testing"

	"github.com/frankenphp-panel/panel-ui/internal/ui/dom/htmldom"
)

const page = `<html><body>
<form id="login-form" method="post" action="/login"><button id="login-btn" class="btn">Sign in</button></form>
<form id="add-site-form" method="post" action="/sites"><button id="add-site-btn">Add</button></form>
<form id="add-database-form" method="post" action="/databases"></form>
</body></html>`

func TestSubmitMarksPairedButton(t *testing.T) {
	doc := htmldom.MustParse(page)
	Wire(htmldom.NewWindow(doc, ""), nil)

	login := doc.ByID("login-btn")
	if login.HasClass(LoadingClass) {
		t.Fatalf("button should not be busy before submit")
	}
	if !doc.ByID("login-form").SubmitForm() {
		t.Fatalf("submit feedback must not prevent native submission")
	}
	if !login.HasClass(LoadingClass) || !login.HasClass("btn") {
		t.Fatalf("expected loading class alongside existing classes, got %q", func() string { v, _ := login.Attr("class"); return v }())
	}
	if v, _ := login.Attr("aria-busy"); v != "true" {
		t.Fatalf("expected aria-busy, got %q", v)
	}
	if doc.ByID("add-site-btn").HasClass(LoadingClass) {
		t.Fatalf("other pairings must be unaffected")
	}
	subs := doc.Submissions()
	if len(subs) != 1 || subs[0].Action != "/login" || subs[0].Method != "POST" {
		t.Fatalf("unexpected submissions %+v", subs)
	}
}

func TestMissingButtonOrFormIsSkipped(t *testing.T) {
	doc := htmldom.MustParse(page)
	Wire(htmldom.NewWindow(doc, ""), nil)
	if !doc.ByID("add-database-form").SubmitForm() {
		t.Fatalf("expected submission without a button")
	}

	empty := htmldom.MustParse(`<html><body></body></html>`)
	teardown := Wire(htmldom.NewWindow(empty, ""), nil)
	teardown()
}

func TestButtonLookedUpAtSubmitTime(t *testing.T) {
	doc := htmldom.MustParse(`<html><body><form id="add-database-form"></form></body></html>`)
	Wire(htmldom.NewWindow(doc, ""), nil)
	btn := doc.CreateElement("button").(*htmldom.Element)
	btn.SetAttr("id", "add-db-btn")
	doc.ByID("add-database-form").Append(btn)
	doc.ByID("add-database-form").SubmitForm()
	if !btn.HasClass(LoadingClass) {
		t.Fatalf("expected late-added button to be marked busy")
	}
}

func TestTeardownRemovesListeners(t *testing.T) {
	doc := htmldom.MustParse(page)
	teardown := Wire(htmldom.NewWindow(doc, ""), nil)
	form := doc.ByID("add-site-form")
	if form.ListenerCount("submit") != 1 {
		t.Fatalf("expected one submit listener")
	}
	teardown()
	teardown()
	form.SubmitForm()
	if doc.ByID("add-site-btn").HasClass(LoadingClass) {
		t.Fatalf("expected no feedback after teardown")
	}
}
