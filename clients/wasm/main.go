//go:build js && wasm

// Bakuretsu WASM - In-browser card renderer.
// Compiled with: GOOS=js GOARCH=wasm go build -o bakuretsu.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"sync"
	"syscall/js"

	"github.com/disintegration/imaging"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
	"github.com/MegumiinUwU/Bakuretsu/pkg/export"
	"github.com/MegumiinUwU/Bakuretsu/pkg/fonts"
	"github.com/MegumiinUwU/Bakuretsu/pkg/logging"
)

// In-memory asset store. The page registers cover and logo bytes here,
// then references them from the render payload; there is no filesystem
// and no network on this side of the bridge.
var (
	assetsMu sync.RWMutex
	assets   = make(map[string][]byte)
)

// library holds the embedded Go fonts, parsed once at startup. Faces
// are minted per render call.
var library *fonts.Library

func main() {
	library = fonts.New(fonts.Config{}, logging.New(os.Stderr, slog.LevelWarn))
	fmt.Println("Bakuretsu WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("bakuRenderCard", js.FuncOf(renderCard))
	js.Global().Set("bakuRegisterAsset", js.FuncOf(registerAsset))
	js.Global().Set("bakuRemoveAsset", js.FuncOf(removeAsset))
	js.Global().Set("bakuListPalettes", js.FuncOf(listPalettes))
	js.Global().Set("bakuReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// resolveAsset returns the registered bytes for an id, nil if absent.
func resolveAsset(id string) []byte {
	assetsMu.RLock()
	defer assetsMu.RUnlock()
	return assets[id]
}

// memoryImages serves cover and logo references from the asset store.
// Both "asset:ID" references and plain paths resolve against it, so a
// page may pre-register platform logos under their usual paths; an
// unregistered logo just degrades to the accent circle.
type memoryImages struct{}

var _ card.ImageSource = memoryImages{}

func (memoryImages) Load(ref string) (image.Image, error) {
	data := resolveAsset(strings.TrimPrefix(ref, "asset:"))
	if data == nil {
		return nil, fmt.Errorf("no asset registered for %q", ref)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding asset %q: %w", ref, err)
	}
	return img, nil
}

// bakuRegisterAsset(id, base64Data) - store image bytes in Go memory.
func registerAsset(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need id, base64Data")
	}
	id := args[0].String()
	data, err := base64.StdEncoding.DecodeString(args[1].String())
	if err != nil {
		return js.ValueOf("error: invalid base64: " + err.Error())
	}

	assetsMu.Lock()
	assets[id] = data
	assetsMu.Unlock()

	return js.ValueOf("ok")
}

// bakuRemoveAsset(id) - drop an asset from Go memory.
func removeAsset(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need id")
	}
	assetsMu.Lock()
	delete(assets, args[0].String())
	assetsMu.Unlock()
	return js.ValueOf("ok")
}

// bakuListPalettes() - built-in palette names and colors as JSON.
func listPalettes(this js.Value, args []js.Value) interface{} {
	type paletteInfo struct {
		Name       string `json:"name"`
		Background string `json:"background"`
		Primary    string `json:"primary"`
		Secondary  string `json:"secondary"`
		Accent     string `json:"accent"`
	}

	infos := make([]paletteInfo, 0, len(card.Palettes))
	for _, p := range card.Palettes {
		infos = append(infos, paletteInfo{
			Name:       p.Name,
			Background: card.FormatHex(p.Background),
			Primary:    card.FormatHex(p.Primary),
			Secondary:  card.FormatHex(p.Secondary),
			Accent:     card.FormatHex(p.Accent),
		})
	}
	out, err := json.Marshal(infos)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(string(out))
}

// cardPayload mirrors the JSON body of the server's POST /api/cards,
// so a page can feed the same object to either side.
type cardPayload struct {
	Title     string  `json:"title"`
	Kind      string  `json:"kind"`
	Score     float64 `json:"score"`
	Body      string  `json:"body"`
	Cover     string  `json:"cover"`
	Platform  string  `json:"platform"`
	Username  string  `json:"username"`
	ReviewURL string  `json:"review_url"`
	Palette   string  `json:"palette"`
}

// bakuRenderCard(payloadJSON, maxDim?) - render and return base64 PNG.
// A positive maxDim scales the result to fit maxDim x maxDim for cheap
// live previews; omit it for the full-size card.
func renderCard(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need payloadJSON")
	}

	var p cardPayload
	if err := json.Unmarshal([]byte(args[0].String()), &p); err != nil {
		return js.ValueOf("error: parse payload: " + err.Error())
	}

	kind, err := card.ParseKind(p.Kind)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	platform, err := card.ParsePlatform(p.Platform)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	// A preview should always show something, so an unknown palette
	// falls back to the default instead of failing the call.
	style := card.DefaultPalette().Style()
	if p.Palette != "" {
		if pal, ok := card.PaletteByName(p.Palette); ok {
			style = pal.Style()
		}
	}

	rv := card.Review{
		Title:     p.Title,
		Score:     p.Score,
		Body:      p.Body,
		Kind:      kind,
		Cover:     p.Cover,
		Platform:  platform,
		Username:  p.Username,
		ReviewURL: p.ReviewURL,
	}

	canvas, err := card.NewRenderer(style, library, memoryImages{}).Render(rv)
	if err != nil {
		return js.ValueOf("error: render: " + err.Error())
	}

	var out image.Image = canvas
	if len(args) > 1 {
		if maxDim := args[1].Int(); maxDim > 0 {
			out = imaging.Fit(canvas, maxDim, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := export.EncodePNG(&buf, out); err != nil {
		return js.ValueOf("error: encode: " + err.Error())
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}
