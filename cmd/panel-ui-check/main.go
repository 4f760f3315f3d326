// Command panel-ui-check reports which UI behavior anchors a rendered panel
// page provides. It exits 1 when an anchor is malformed, or with -strict when
// any anchor is missing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frankenphp-panel/panel-ui/internal/ui/contract"
)

func main() {
	strict := flag.Bool("strict", false, "fail when any anchor is missing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-strict] page.html...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		ok, err := checkFile(path, *strict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "panel-ui-check: %v\n", err)
			os.Exit(2)
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func checkFile(path string, strict bool) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	report, err := contract.Parse(f)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("== %s\n", path)
	if err := report.Write(os.Stdout); err != nil {
		return false, err
	}
	if strict {
		return report.Complete(), nil
	}
	return report.Valid(), nil
}
