//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"
)

// ConsoleWriter forwards each written log line to console.log.
type ConsoleWriter struct{}

func (ConsoleWriter) Write(p []byte) (int, error) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return len(p), nil
	}
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			console.Call("log", line)
		}
	}
	return len(p), nil
}
