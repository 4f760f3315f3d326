// Package devserver serves the panel UI dev page together with stub versions
// of the panel's action routes. Each stub answers the way the real panel
// does after an action: a 303 redirect to the dashboard carrying a one-shot
// query flag.
package devserver

import (
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/frankenphp-panel/panel-ui/internal/ui/contract"
	"github.com/frankenphp-panel/panel-ui/logging"
)

// IndexFile is served at the site root.
const IndexFile = "index.html"

// Server routes dev requests.
type Server struct {
	assets fs.FS
	logger *logging.Logger
}

// New returns a Server serving assets.
func New(assets fs.FS, logger *logging.Logger) *Server {
	mime.AddExtensionType(".wasm", "application/wasm")
	return &Server{assets: assets, logger: logger}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logging.NewHTTPLogger(s.logger).Middleware)

	r.Post("/login", s.redirect(""))
	r.Post("/logout", s.redirect(""))
	r.Post("/sites", s.redirect("created"))
	r.Post("/sites/{id}/restart", s.siteAction("restarted"))
	r.Post("/sites/{id}/delete", s.siteAction("deleted"))
	r.Post("/databases", s.redirect("db_created"))
	r.Post("/databases/{id}/delete", s.siteAction(""))
	r.Get("/", s.index)
	r.Get("/*", s.static)
	return r
}

func (s *Server) redirect(flag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "/"
		if flag != "" {
			target = "/?" + flag + "=1"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// siteAction rejects ids that are not positive integers, as the panel does.
func (s *Server) siteAction(flag string) http.HandlerFunc {
	next := s.redirect(flag)
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			http.Error(w, fmt.Sprintf("invalid id %q", raw), http.StatusBadRequest)
			return
		}
		s.logger.Info("devserver", "stub action", map[string]any{"path": r.URL.Path, "id": id})
		next(w, r)
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(s.assets, IndexFile)
	if err != nil {
		http.Error(w, "index.html not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

func (s *Server) static(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	http.FileServer(http.FS(s.assets)).ServeHTTP(w, r)
}

// CheckIndex runs the DOM contract check against the served index page.
func (s *Server) CheckIndex() (contract.Report, error) {
	f, err := s.assets.Open(IndexFile)
	if err != nil {
		return contract.Report{}, fmt.Errorf("open %s: %w", IndexFile, err)
	}
	defer f.Close()
	return contract.Parse(f)
}

// LogReport writes missing and invalid anchors as warnings.
func (s *Server) LogReport(report contract.Report) {
	for _, f := range report.Findings {
		if f.Status == contract.Found {
			continue
		}
		s.logger.Warn("contract", fmt.Sprintf("%s anchor %s is %s", f.Component, f.Anchor, f.Status), map[string]any{
			"component": f.Component,
			"anchor":    f.Anchor,
			"status":    string(f.Status),
			"detail":    f.Detail,
		})
	}
}
