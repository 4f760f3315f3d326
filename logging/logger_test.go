package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("panel-ui", WARN, &buf)
	logger.Debug("ui", "hidden", nil)
	logger.Info("ui", "hidden", nil)
	logger.Warn("ui", "shown", map[string]any{"anchor": "toast-container"})
	logger.Error("ui", "failed", errors.New("boom"), nil)

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[0].Level != "WARN" || entries[0].Source != "panel-ui" || entries[0].Fields["anchor"] != "toast-container" {
		t.Fatalf("unexpected warn entry %+v", entries[0])
	}
	if entries[1].Error != "boom" {
		t.Fatalf("expected error text, got %+v", entries[1])
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	logger.Debug("ui", "ignored", nil)
	logger.Error("ui", "ignored", errors.New("x"), nil)
	if logger.Enabled(ERROR) {
		t.Fatalf("nil logger should not be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: DEBUG},
		{in: " WARNING ", want: WARN},
		{in: "", want: INFO},
		{in: "error", want: ERROR},
		{in: "loud", want: INFO, wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestHTTPMiddlewareAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("serve", INFO, &buf)
	handler := NewHTTPLogger(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/?deleted=1", http.StatusSeeOther)
	}))

	req := httptest.NewRequest(http.MethodPost, "/sites/42/delete", nil)
	req.Header.Set("Cookie", "session=secret")
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatalf("expected request id header")
	}
	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %+v", entries)
	}
	entry := entries[0]
	if entry.RequestID != id || entry.Category != "http" || entry.Message != "POST /sites/42/delete 303" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Fields["location"] != "/?deleted=1" {
		t.Fatalf("expected redirect location to be logged, got %+v", entry.Fields)
	}
	headers, _ := entry.Fields["request_headers"].(map[string]any)
	if _, ok := headers["Cookie"]; ok {
		t.Fatalf("cookie header should be elided: %+v", headers)
	}
	if headers["Accept"] != "text/html" {
		t.Fatalf("expected accept header, got %+v", headers)
	}
}
