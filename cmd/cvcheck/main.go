// cvcheck loads the configured documents the same way the server would and
// prints what it finds. Useful for checking a CV before wiring the tool up.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/cvtwin/internal/config"
	"github.com/dgallion1/cvtwin/internal/docstore"
	"github.com/dgallion1/cvtwin/internal/extract"
)

func main() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	config.LoadDotEnv(".env")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	store := docstore.NewStore()
	extractor := extract.New(log, extract.DefaultBackends()...)
	loader := docstore.NewLoader(store, extractor, cfg.DocsDir, docstore.Mode(cfg.DiscoveryMode), log)

	var err error
	if len(os.Args) > 1 {
		err = loader.LoadPath(os.Args[1])
	} else {
		err = loader.EnsureLoaded()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading CV: %v\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: cvcheck [path_to_cv.pdf]")
		fmt.Fprintf(os.Stderr, "Or place PDF file(s) in %s and run without arguments.\n", cfg.DocsDir)
		os.Exit(1)
	}

	snap := store.Snapshot()
	fmt.Println("CV loaded successfully!")
	for _, src := range snap.Sources {
		fmt.Printf("  file: %s\n", src.Path)
	}
	fmt.Printf("Content length: %d characters\n", len(snap.Text))

	preview := snap.Text
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	fmt.Printf("Preview: %s\n", preview)
}
