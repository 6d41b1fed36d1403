// Package server exposes the card engine over an HTTP API: palette
// discovery, cover uploads and PNG rendering. The API is consumed by
// chat bots and the browser client; cards stream back as image/png
// and never touch the server's disk.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
	"github.com/MegumiinUwU/Bakuretsu/pkg/export"
)

// previewMax bounds the longest edge of ?preview=1 responses.
const previewMax = 600

// Options configures the server.
type Options struct {
	Addr string
	// MaxUploadMB bounds asset uploads; zero means unlimited.
	MaxUploadMB int
}

// Server holds the shared render dependencies. Renderers themselves
// are built per request around the chosen palette.
type Server struct {
	opts   Options
	log    *slog.Logger
	fonts  card.FontSource
	images card.ImageSource
	assets *assetStore
}

// New creates a server. images is the fallback source for cover URLs
// and file paths; uploaded assets always resolve first.
func New(opts Options, fonts card.FontSource, images card.ImageSource, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	return &Server{
		opts:   opts,
		log:    log,
		fonts:  fonts,
		images: images,
		assets: newAssetStore(),
	}
}

// Router builds the engine with all API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/palettes", s.handleListPalettes)
		api.POST("/cards", s.handleCreateCard)
		api.POST("/assets", s.handleUploadAsset)
		api.GET("/assets", s.handleListAssets)
		api.GET("/assets/:id", s.handleGetAsset)
		api.DELETE("/assets/:id", s.handleDeleteAsset)
	}
	return r
}

// Run serves the API until the listener fails.
func (s *Server) Run() error {
	gin.SetMode(gin.ReleaseMode)
	s.log.Info("api listening", "addr", s.opts.Addr)
	return s.Router().Run(s.opts.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListPalettes(c *gin.Context) {
	type paletteInfo struct {
		Name       string `json:"name"`
		Background string `json:"background"`
		Primary    string `json:"primary"`
		Secondary  string `json:"secondary"`
		Accent     string `json:"accent"`
	}

	out := make([]paletteInfo, 0, len(card.Palettes))
	for _, p := range card.Palettes {
		out = append(out, paletteInfo{
			Name:       p.Name,
			Background: card.FormatHex(p.Background),
			Primary:    card.FormatHex(p.Primary),
			Secondary:  card.FormatHex(p.Secondary),
			Accent:     card.FormatHex(p.Accent),
		})
	}
	c.JSON(http.StatusOK, out)
}

// cardRequest is the JSON body of POST /api/cards. Cover may be a
// URL, a server-side path, or an "asset:ID" reference from a prior
// upload.
type cardRequest struct {
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

func (s *Server) handleCreateCard(c *gin.Context) {
	var req cardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := card.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	platform, err := card.ParsePlatform(req.Platform)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unlike review files, the API treats an unknown palette as a
	// client bug rather than degrading silently.
	style := card.DefaultPalette().Style()
	if req.Palette != "" {
		p, ok := card.PaletteByName(req.Palette)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown palette %q", req.Palette)})
			return
		}
		style = p.Style()
	}

	rv := card.Review{
		Title:     req.Title,
		Score:     req.Score,
		Body:      req.Body,
		Kind:      kind,
		Cover:     req.Cover,
		Platform:  platform,
		Username:  req.Username,
		ReviewURL: req.ReviewURL,
	}

	renderer := card.NewRenderer(style, s.fonts, assetSource{store: s.assets, next: s.images})
	canvas, err := renderer.Render(rv)
	if err != nil {
		var verr *card.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var out image.Image = canvas
	preview := c.Query("preview") == "1" || c.Query("preview") == "true"
	if preview {
		out = imaging.Fit(canvas, previewMax, previewMax, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := export.EncodePNG(&buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("card rendered", "title", req.Title, "bytes", buf.Len(), "preview", preview)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleUploadAsset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if limit := int64(s.opts.MaxUploadMB) << 20; limit > 0 && file.Size > limit {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds %d MB limit", s.opts.MaxUploadMB)})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	id := s.assets.add(file.Filename, data, mimeType)
	s.log.Info("asset uploaded", "id", id, "name", file.Filename, "size", len(data))
	c.JSON(http.StatusOK, gin.H{
		"id":   id,
		"name": file.Filename,
		"ref":  assetRefPrefix + id,
		"url":  "/api/assets/" + id,
	})
}

func (s *Server) handleListAssets(c *gin.Context) {
	c.JSON(http.StatusOK, s.assets.list())
}

func (s *Server) handleGetAsset(c *gin.Context) {
	a, ok := s.assets.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}
	c.Data(http.StatusOK, a.Mime, a.Data)
}

func (s *Server) handleDeleteAsset(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.assets.get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}
	s.assets.remove(id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}
