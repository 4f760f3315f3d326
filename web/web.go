// Package web holds the development page used to exercise the panel UI
// behaviors outside the real panel.
package web

import "embed"

// IndexHTML is the dashboard fixture served at / by the dev server.
//
//go:embed index.html
var IndexHTML string

// Assets contains the static files that ship with the dev page. The built
// main.wasm and wasm_exec.js are not embedded.
//
//go:embed index.html panel.css
var Assets embed.FS
