package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"breathewatch/internal/aqi"
	"breathewatch/internal/charts"
	"breathewatch/internal/models"
	"breathewatch/internal/storage"
)

// HandleDashboard serves the dashboard page for a place query or
// coordinate pair. Provider failures render as an error panel on the
// page, never as a bare 500.
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	query, aq, fetchErr := s.fetchForRequest(ctx, r)

	var errMsg string
	if fetchErr != nil {
		s.log.Error("Dashboard fetch failed", fetchErr, map[string]interface{}{"query": query})
		errMsg = fmt.Sprintf("Could not load air quality for %q: %v", query, fetchErr)
	}

	// Advisories are decoration; failures degrade to an empty strip
	advisories, err := s.Fetcher.FetchAdvisories(ctx, s.Config.AdvisoriesRSSURL)
	if err != nil {
		s.log.Warn("Advisories fetch failed", map[string]interface{}{"url": s.Config.AdvisoriesRSSURL})
	}

	view := s.Builder.BuildView(query, aq, advisories, s.Favorites.List(), errMsg)
	html, err := s.Builder.RenderHTML(view)
	if err != nil {
		s.log.Error("Dashboard render failed", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleQuality returns the classified air quality for a query as JSON
func (s *Server) HandleQuality(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	query, aq, err := s.fetchForRequest(ctx, r)
	if err != nil {
		if errors.Is(err, errInvalidGeo) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("Quality fetch failed", err, map[string]interface{}{"query": query})
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	assessment := aqi.Classify(aq.Index)
	response := map[string]interface{}{
		"query":      query,
		"place":      aq.Place,
		"index":      aq.Index,
		"level":      assessment.Label,
		"advisory":   assessment.Advisory,
		"mask":       assessment.Mask,
		"cigarettes": aqi.CigaretteEquivalent(aq.Index),
		"readings":   aq.Readings,
		"forecast":   aq.Forecast,
		"fetched_at": aq.FetchedAt.UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleFavorites manages the saved places list: GET lists, POST
// toggles, DELETE removes
func (s *Server) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		writeFavorites(w, s.Favorites.List())

	case http.MethodPost:
		name, isForm := favoriteName(r)
		if name == "" {
			writeJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		names := s.Favorites.Toggle(ctx, name)
		if isForm {
			// Dashboard form posts bounce back to the page
			http.Redirect(w, r, "/?q="+url.QueryEscape(name), http.StatusSeeOther)
			return
		}
		writeFavorites(w, names)

	case http.MethodDelete:
		name := r.URL.Query().Get("name")
		if name == "" {
			writeJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		writeFavorites(w, s.Favorites.Remove(ctx, name))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSnapshot exports the current dashboard for a query to storage
func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	startTime := time.Now()

	query, aq, err := s.fetchForRequest(ctx, r)
	if err != nil {
		s.log.Error("Snapshot fetch failed", err, map[string]interface{}{"query": query})
		writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("data fetch failed: %v", err))
		return
	}

	view := s.Builder.BuildView(query, aq, nil, s.Favorites.List(), "")
	html, err := s.Builder.RenderHTML(view)
	if err != nil {
		s.log.Error("Snapshot render failed", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to render snapshot")
		return
	}

	folder := storage.SnapshotFolderPath(startTime)
	if err := s.Storage.StoreFile(ctx, folder+"/index.html", []byte(html)); err != nil {
		s.log.Error("Snapshot store failed", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to store snapshot")
		return
	}

	// Chart image is best-effort; the HTML snapshot is the deliverable
	if imageData, err := s.exportForecastPNG(aq); err == nil {
		if err := s.Storage.StoreFile(ctx, folder+"/forecast.png", imageData); err != nil {
			s.log.Warn("Failed to store forecast chart", map[string]interface{}{"folder": folder})
		}
	}

	s.log.Infof("Snapshot stored in %v", time.Since(startTime))

	response := map[string]interface{}{
		"status":      "success",
		"snapshot":    folder + "/index.html",
		"place":       aq.Place,
		"timestamp":   startTime.UTC().Format(time.RFC3339),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleListSnapshots lists stored dashboard snapshots
func (s *Server) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	snapshots, err := s.Storage.ListSnapshots(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list snapshots", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}

	response := map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleFileProxy serves stored snapshot files through the service
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.log.Warn("File proxy miss", map[string]interface{}{"path": filePath})
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(fileData)
}

// fetchForRequest resolves the query parameters into one provider fetch.
// geo takes precedence over q; an empty request falls back to the
// configured default city.
func (s *Server) fetchForRequest(ctx context.Context, r *http.Request) (string, *models.AirQuality, error) {
	if geo := r.URL.Query().Get("geo"); geo != "" {
		lat, lon, err := parseGeo(geo)
		if err != nil {
			return geo, nil, err
		}
		aq, err := s.Fetcher.FetchGeo(ctx, lat, lon)
		return geo, aq, err
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		query = s.Config.DefaultCity
	}
	aq, err := s.Fetcher.FetchCity(ctx, query)
	return query, aq, err
}

// exportForecastPNG renders the forecast chart in a temporary directory
// and returns the image bytes. The directory is removed before returning.
func (s *Server) exportForecastPNG(aq *models.AirQuality) ([]byte, error) {
	dir, err := os.MkdirTemp("", "breathewatch-chart-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	chartPath, err := charts.NewGenerator(dir).GenerateForecastPNG(aq)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(chartPath)
}

// errInvalidGeo marks coordinate parse failures so handlers can report
// them as client errors rather than provider failures
var errInvalidGeo = errors.New("invalid geo query")

// parseGeo parses "lat;lon" (with an optional "geo:" prefix) into a
// coordinate pair
func parseGeo(raw string) (float64, float64, error) {
	trimmed := strings.TrimPrefix(raw, "geo:")
	parts := strings.SplitN(trimmed, ";", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w %q, expected lat;lon", errInvalidGeo, raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad latitude %q", errInvalidGeo, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad longitude %q", errInvalidGeo, parts[1])
	}

	return lat, lon, nil
}

// favoriteName extracts the place name from a toggle request and
// reports whether it arrived as a browser form post
func favoriteName(r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", false
		}
		return strings.TrimSpace(body.Name), false
	}

	if err := r.ParseForm(); err != nil {
		return "", true
	}
	return strings.TrimSpace(r.FormValue("name")), true
}

func writeFavorites(w http.ResponseWriter, names []string) {
	response := map[string]interface{}{
		"favorites": names,
		"count":     len(names),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
