// watch.go - Watch mode: re-render review documents as they change.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/MegumiinUwU/Bakuretsu/pkg/watch"
)

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var (
		dir        string
		outDir     string
		palette    string
		configPath string
	)
	fs.StringVar(&dir, "dir", "reviews", "Directory of review documents")
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

	w, err := watch.New(dir, time.Duration(app.cfg.Watch.PollSeconds)*time.Second, app.log)
	if err != nil {
		return err
	}
	defer w.Close()

	// render runs one pass over documents modified since the last
	// pass and returns the new watermark.
	render := func(since time.Time) time.Time {
		pass := time.Now()
		docs, err := watch.ModifiedSince(dir, since)
		if err != nil {
			app.log.Error("scan failed", "dir", dir, "error", err)
			return pass
		}
		for _, path := range docs {
			if _, err := app.renderDocument(path, "", palette); err != nil {
				app.log.Error("render failed", "review", path, "error", err)
			}
		}
		return pass
	}

	fmt.Printf("Watching %s for review documents (Ctrl-C to stop)\n", dir)
	last := render(time.Time{})

	for range w.Events() {
		// Let editors finish rapid write bursts before re-reading.
		time.Sleep(200 * time.Millisecond)
		last = render(last)
	}
	return nil
}
