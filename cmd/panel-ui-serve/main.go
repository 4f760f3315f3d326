//go:build !js && !wasm

// Command panel-ui-serve hosts the dev page, the built main.wasm, and stub
// panel routes so the UI behaviors can be tried without the real panel.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/frankenphp-panel/panel-ui/internal/devserver"
	"github.com/frankenphp-panel/panel-ui/logging"
	"github.com/frankenphp-panel/panel-ui/web"
)

func main() {
	listen := flag.String("listen", "127.0.0.1:2091", "address to serve the dev page")
	staticDir := flag.String("dir", "web", "directory containing index.html, main.wasm and wasm_exec.js (empty uses the embedded page)")
	levelName := flag.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logging.ParseLevel(*levelName)
	if err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	logger := logging.New("panel-ui-serve", level, os.Stdout)

	assets, err := resolveAssets(*staticDir)
	if err != nil {
		log.Fatalf("static directory: %v", err)
	}

	srv := devserver.New(assets, logger)
	if report, err := srv.CheckIndex(); err != nil {
		logger.Warn("contract", "could not check index page", map[string]any{"error": err.Error()})
	} else {
		srv.LogReport(report)
	}

	httpServer := &http.Server{
		Addr:              *listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("server", "serving panel UI dev page", map[string]any{"listen": "http://" + *listen, "dir": *staticDir})
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

func resolveAssets(dir string) (fs.FS, error) {
	if dir == "" {
		return web.Assets, nil
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New(root + " is not a directory")
	}
	return os.DirFS(root), nil
}
