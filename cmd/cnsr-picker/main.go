package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/handiism/cnsr-locator/internal/config"
	"github.com/handiism/cnsr-locator/internal/dataset"
	"github.com/handiism/cnsr-locator/internal/tui"
)

func main() {
	var (
		rootFlag   = flag.String("root", "", "Data root directory (overrides config)")
		kindFlag   = flag.String("kind", "", "Dataset kind: EDA, ERN, FAA or HRV")
		configFlag = flag.String("config", "", "Path to settings file")
	)
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *rootFlag != "" {
		settings.DataRoot = *rootFlag
	}
	if *kindFlag != "" {
		settings.DefaultKind = *kindFlag
	}

	kind, err := settings.Kind()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	loc, err := dataset.New(kind, settings.DataRoot, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sel, err := tui.Run(loc, settings.ShowHidden)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sel == nil {
		os.Exit(1)
	}

	if err := printSelection(os.Stdout, sel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printSelection writes sel as indented JSON so notebooks and scripts can
// consume it.
func printSelection(w io.Writer, sel *tui.Selection) error {
	blob, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	_, err = fmt.Fprintln(w, string(blob))
	return err
}
