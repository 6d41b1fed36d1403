// Bakuretsu - Review card image generation.
//
// Usage:
//
//	bakuretsu -review <file.toml> [-o out.png] [-palette name]
//	bakuretsu batch -pattern 'reviews/**/*.toml'
//	bakuretsu watch -dir reviews
//	bakuretsu serve [-addr :8080]
//	bakuretsu palettes
//	bakuretsu init
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MegumiinUwU/Bakuretsu/clients/server"
	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
	"github.com/MegumiinUwU/Bakuretsu/pkg/config"
	"github.com/MegumiinUwU/Bakuretsu/pkg/export"
	"github.com/MegumiinUwU/Bakuretsu/pkg/fonts"
	"github.com/MegumiinUwU/Bakuretsu/pkg/imageio"
	"github.com/MegumiinUwU/Bakuretsu/pkg/logging"
	"github.com/MegumiinUwU/Bakuretsu/pkg/reviewfile"
)

const defaultConfigPath = "bakuretsu.toml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "batch":
		if err := runBatch(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "watch":
		if err := runWatch(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "palettes":
		runPalettes()
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: render mode (all flags on root).
		if err := run(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

// app bundles the shared render dependencies built from config.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
	fonts  *fonts.Library
	images card.ImageSource
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	var log *slog.Logger
	var closer io.Closer
	if cfg.Log.File != "" {
		log, closer = logging.NewRotating(cfg.Log.File, level, cfg.Log.MaxSizeMB)
	} else {
		log = logging.New(os.Stderr, level)
	}

	lib := fonts.New(fonts.Config{
		Regular:  cfg.Fonts.Regular,
		Bold:     cfg.Fonts.Bold,
		CacheDir: cfg.Fonts.CacheDir,
	}, log)

	var images card.ImageSource = imageio.New(log)
	if cfg.LogoDir != "" {
		images = imageio.RebaseLogos{Dir: cfg.LogoDir, Next: images}
	}

	return &app{cfg: cfg, log: log, closer: closer, fonts: lib, images: images}, nil
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// renderDocument renders one review document to its output image,
// honoring palette and output overrides. Returns the output path.
func (a *app) renderDocument(path, outOverride, paletteOverride string) (string, error) {
	doc, err := reviewfile.Load(path)
	if err != nil {
		return "", err
	}
	if doc.Palette == "" {
		doc.Palette = a.cfg.Palette
	}
	if paletteOverride != "" {
		doc.Palette = paletteOverride
	}

	style, known := doc.Style()
	if !known {
		a.log.Warn("unknown palette, using default", "palette", doc.Palette, "review", path)
	}

	rv, err := doc.Review()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	out := doc.OutputPath()
	if outOverride != "" {
		out = outOverride
	}
	if a.cfg.OutputDir != "" && !filepath.IsAbs(out) {
		out = filepath.Join(a.cfg.OutputDir, out)
	}

	renderer := card.NewRenderer(style, a.fonts, a.images)
	canvas, err := renderer.Render(rv)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := export.Save(canvas, out); err != nil {
		return "", err
	}
	a.log.Info("card rendered", "review", path, "output", out)
	return out, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("bakuretsu", flag.ExitOnError)

	var (
		reviewPath string
		output     string
		palette    string
		configPath string
	)
	fs.StringVar(&reviewPath, "review", "", "Review document to render (.toml)")
	fs.StringVar(&output, "o", "", "Output image path (.png, .jpg, ...)")
	fs.StringVar(&output, "output", "", "Output image path (.png, .jpg, ...)")
	fs.StringVar(&palette, "palette", "", "Palette name override")
	fs.StringVar(&configPath, "config", defaultConfigPath, "Config file path")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if reviewPath == "" {
		printUsage()
		return fmt.Errorf("review document is required (-review)")
	}

	app, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer app.close()

	out, err := app.renderDocument(reviewPath, output, palette)
	if err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", out)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var addr, configPath string
	fs.StringVar(&addr, "addr", "", "Listen address (overrides config)")
	fs.StringVar(&configPath, "config", defaultConfigPath, "Config file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer app.close()

	if addr == "" {
		addr = app.cfg.Server.Addr
	}

	srv := server.New(server.Options{
		Addr:        addr,
		MaxUploadMB: app.cfg.Server.MaxUploadMB,
	}, app.fonts, app.images, app.log)

	fmt.Printf("Bakuretsu API listening on %s\n", addr)
	return srv.Run()
}

func runPalettes() {
	fmt.Println("Built-in palettes:")
	for _, p := range card.Palettes {
		fmt.Printf("  %-16s background %s  primary %s  secondary %s  accent %s\n",
			p.Name,
			card.FormatHex(p.Background),
			card.FormatHex(p.Primary),
			card.FormatHex(p.Secondary),
			card.FormatHex(p.Accent))
	}
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var reviewOut string
	var withConfig bool
	fs.StringVar(&reviewOut, "o", "review.toml", "Output path for the example review")
	fs.BoolVar(&withConfig, "config", false, "Also write an example "+defaultConfigPath)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(reviewOut, []byte(reviewfile.Example()), 0o644); err != nil {
		return fmt.Errorf("write example review: %w", err)
	}
	created := reviewOut
	if withConfig {
		if err := os.WriteFile(defaultConfigPath, []byte(config.Example()), 0o644); err != nil {
			return fmt.Errorf("write example config: %w", err)
		}
		created += ", " + defaultConfigPath
	}

	fmt.Printf("Created: %s\n", created)
	fmt.Println("Run: bakuretsu -review " + reviewOut)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`Bakuretsu - Review card image generation

USAGE:
    bakuretsu -review <file.toml> [options]
    bakuretsu batch -pattern <glob> [options]
    bakuretsu watch [-dir reviews] [options]
    bakuretsu serve [-addr :8080]
    bakuretsu palettes
    bakuretsu init [-o review.toml] [-config]

RENDER:
    -review <path>         Review document to render
    -o, -output <path>     Output image (.png, .jpg, .gif, .tif, .bmp)
    -palette <name>        Palette override (see: bakuretsu palettes)
    -config <path>         Config file (default: bakuretsu.toml)

BATCH:
    -pattern <glob>        Documents to render (default: reviews/**/*.toml)
    -out <dir>             Output directory

WATCH:
    -dir <path>            Directory to watch (default: reviews)
    -out <dir>             Output directory

API SERVER:
    -addr <addr>           Listen address (default from config, :8080)

EXAMPLES:
    bakuretsu init
    bakuretsu -review review.toml
    bakuretsu -review review.toml -o card.png -palette "Midnight Blue"
    bakuretsu batch -pattern 'reviews/**/*.toml' -out cards
    bakuretsu watch -dir reviews
    bakuretsu serve -addr :9090
`)
}
