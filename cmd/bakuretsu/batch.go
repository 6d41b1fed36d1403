// batch.go - Batch rendering over glob patterns.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var (
		pattern    string
		outDir     string
		palette    string
		configPath string
	)
	fs.StringVar(&pattern, "pattern", "reviews/**/*.toml", "Glob pattern for review documents")
	fs.StringVar(&outDir, "out", "", "Output directory (overrides config output_dir)")
	fs.StringVar(&palette, "palette", "", "Palette name override")
	fs.StringVar(&configPath, "config", defaultConfigPath, "Config file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer app.close()

	if outDir != "" {
		app.cfg.OutputDir = outDir
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no review documents match %q", pattern)
	}

	// Keep going past per-document failures; batch output is a
	// gallery, not a transaction.
	rendered := 0
	for _, path := range matches {
		if _, err := app.renderDocument(path, "", palette); err != nil {
			app.log.Error("render failed", "review", path, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
			continue
		}
		rendered++
	}

	fmt.Printf("Rendered %d/%d cards\n", rendered, len(matches))
	if rendered == 0 {
		return fmt.Errorf("all %d documents failed", len(matches))
	}
	return nil
}
