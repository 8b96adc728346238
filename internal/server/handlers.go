// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/ortemap/ortemap/internal/render"

	"github.com/rs/zerolog/log"
)

const etagCap = 64

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/favicon.svg" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleDataset serves the raw GeoJSON dataset. A remote dataset source is
// redirected rather than proxied.
func (s *ServerContext) HandleDataset(w http.ResponseWriter, r *http.Request) {
	source := s.Config.Dataset

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		http.Redirect(w, r, source, http.StatusTemporaryRedirect)
		return
	}

	if !s.serveFile(w, r, source, "application/geo+json") {
		http.NotFound(w, r)
	}
}

// HandleConfig serves the client bootstrap payload: map defaults, the color
// palette and the zoom sizing ladder.
func (s *ServerContext) HandleConfig(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Title       string            `json:"title"`
		Attribution string            `json:"attribution,omitempty"`
		TileURL     string            `json:"tile_url"`
		Center      [2]float64        `json:"center"` // [lat, lon] display order
		Zoom        int               `json:"zoom"`
		Palette     []string          `json:"palette"`
		SizeSteps   []render.SizeStep `json:"size_steps"`
		State       string            `json:"state"`
	}{
		Title:       s.Config.Title,
		Attribution: s.Config.Attribution,
		TileURL:     s.Config.TileURL,
		Center:      [2]float64{s.Config.Center.Lat, s.Config.Center.Lon},
		Zoom:        s.Config.Zoom,
		Palette:     s.Config.Palette,
		SizeSteps:   render.SizeSteps,
		State:       s.Session.State().String(),
	}

	writeJSON(w, http.StatusOK, payload)
}

// HandleMarkers serves the full marker list with colors and current sizing.
func (s *ServerContext) HandleMarkers(w http.ResponseWriter, r *http.Request) {
	if s.failed(w) {
		return
	}

	markers := s.Session.Markers()
	if markers == nil {
		markers = []*render.Marker{}
	}

	writeJSON(w, http.StatusOK, markers)
}

// HandleLegend serves the legend entries sorted by count descending. An
// empty list tells the client to show its placeholder.
func (s *ServerContext) HandleLegend(w http.ResponseWriter, r *http.Request) {
	if s.failed(w) {
		return
	}

	legend := s.Session.Legend()
	if legend == nil {
		legend = []render.LegendEntry{}
	}

	writeJSON(w, http.StatusOK, legend)
}

// HandleStats serves the summary panel values.
func (s *ServerContext) HandleStats(w http.ResponseWriter, r *http.Request) {
	if s.failed(w) {
		return
	}

	writeJSON(w, http.StatusOK, s.Session.Summary())
}

// HandleViewport serves the fitted view bounds and whether the client should
// replace its default framing with them.
func (s *ServerContext) HandleViewport(w http.ResponseWriter, r *http.Request) {
	if s.failed(w) {
		return
	}

	bounds, fit := s.Session.Viewport()
	payload := struct {
		Bounds interface{} `json:"bounds"`
		Fit    bool        `json:"fit"`
	}{Bounds: bounds, Fit: fit}

	writeJSON(w, http.StatusOK, payload)
}

// failed writes the terminal failure payload when the session did not reach
// Ready. Returns true when the request is done.
func (s *ServerContext) failed(w http.ResponseWriter) bool {
	if s.Session.State() != render.StateFailed {
		return false
	}

	message, cause := s.Session.Failure()
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}

	writeJSON(w, http.StatusServiceUnavailable, struct {
		State   string `json:"state"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	}{
		State:   render.StateFailed.String(),
		Message: message,
		Detail:  detail,
	})

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}
