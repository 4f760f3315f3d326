// Command panel-ui builds the wasm bundle into web/ and runs the dev server
// until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

const webDir = "web"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := procConfig{
		Name: "build-panel-wasm",
		Args: []string{"go", "build", "-o", filepath.Join(webDir, "main.wasm"), "./cmd/panel-ui-wasm"},
		Env:  []string{"GOOS=js", "GOARCH=wasm"},
	}
	if err := runOnce(ctx, build); err != nil {
		fmt.Fprintf(os.Stderr, "panel-ui exited with error: %v\n", err)
		os.Exit(1)
	}
	if err := copyWasmExec(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "panel-ui exited with error: %v\n", err)
		os.Exit(1)
	}

	procs := []procConfig{
		{
			Name: "serve",
			Args: []string{"go", "run", "./cmd/panel-ui-serve", "-dir", webDir, "-log-level", "debug"},
		},
	}
	if err := runAll(ctx, procs); err != nil {
		fmt.Fprintf(os.Stderr, "panel-ui exited with error: %v\n", err)
		os.Exit(1)
	}
}

func command(ctx context.Context, cfg procConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	return cmd
}

func runOnce(ctx context.Context, cfg procConfig) error {
	if err := command(ctx, cfg).Run(); err != nil {
		return fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return nil
}

// copyWasmExec places the toolchain's wasm_exec.js next to main.wasm.
func copyWasmExec(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("go env GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))
	var data []byte
	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		data, err = os.ReadFile(filepath.Join(goroot, rel))
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("locate wasm_exec.js: %w", err)
	}
	if err := os.WriteFile(filepath.Join(webDir, "wasm_exec.js"), data, 0o644); err != nil {
		return fmt.Errorf("write wasm_exec.js: %w", err)
	}
	return nil
}

func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := command(ctx, cfg)
			if err := cmd.Start(); err != nil {
				errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				return
			}
			if err := cmd.Wait(); err != nil {
				// If the context was cancelled, treat the exit as expected.
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		shutdownDelay := time.After(2 * time.Second)
		select {
		case <-done:
		case <-shutdownDelay:
		}
	case err := <-errCh:
		return err
	case <-done:
	}
	return nil
}
