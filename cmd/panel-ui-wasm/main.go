//go:build js && wasm

// Command panel-ui-wasm is the browser entry point for the panel UI
// behaviors. It mounts every behavior once and keeps the module alive so the
// registered callbacks stay valid.
package main

import (
	"github.com/frankenphp-panel/panel-ui/internal/ui/app"
	"github.com/frankenphp-panel/panel-ui/internal/ui/dom/jsdom"
	"github.com/frankenphp-panel/panel-ui/logging"
)

func main() {
	done := make(chan struct{})
	log := logging.New("panel-ui", logging.WARN, jsdom.ConsoleWriter{})
	app.Mount(jsdom.NewWindow(), log)
	<-done
}
