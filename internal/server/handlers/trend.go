// internal/server/handlers/trend.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stylepulse/internal/domain/trend"
)

// TrendHandler serves a computed results snapshot over HTTP
type TrendHandler struct {
	snapshot *trend.Snapshot
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(snapshot *trend.Snapshot) *TrendHandler {
	return &TrendHandler{
		snapshot: snapshot,
	}
}

// GetSummary returns the week/tag buckets, optionally filtered
func (h *TrendHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	filter := trend.Filter{
		Tag:  r.URL.Query().Get("tag"),
		Week: r.URL.Query().Get("week"),
	}
	if minPosts := r.URL.Query().Get("min_posts"); minPosts != "" {
		n, err := strconv.Atoi(minPosts)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid min_posts", err)
			return
		}
		filter.MinPosts = n
	}

	respondWithJSON(w, http.StatusOK, h.snapshot.FilterBuckets(filter))
}

// GetRising returns the rising tags, optionally limited to the top n
func (h *TrendHandler) GetRising(w http.ResponseWriter, r *http.Request) {
	rising := h.snapshot.Rising

	if nStr := r.URL.Query().Get("n"); nStr != "" {
		n, err := strconv.Atoi(nStr)
		if err != nil || n < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid n", err)
			return
		}
		if n < len(rising) {
			rising = rising[:n]
		}
	}

	respondWithJSON(w, http.StatusOK, rising)
}

// GetTagSeries returns one tag's weekly post counts
func (h *TrendHandler) GetTagSeries(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	if tag == "" {
		respondWithError(w, http.StatusBadRequest, "Missing tag", nil)
		return
	}

	series, ok := h.snapshot.Series(tag)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Tag not found", ErrNotFound)
		return
	}

	respondWithJSON(w, http.StatusOK, series)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}

// Common errors
var (
	ErrNotFound = errors.New("not found")
)
