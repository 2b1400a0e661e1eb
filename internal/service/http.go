package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/billease/internal/categories"
	"github.com/mmynk/billease/internal/export"
	"github.com/mmynk/billease/internal/ledger"
)

// HTTPHandler serves the non-RPC endpoints under /api.
type HTTPHandler struct {
	ledger *ledger.Ledger
}

// NewHTTPHandler creates an HTTPHandler backed by l.
func NewHTTPHandler(l *ledger.Ledger) *HTTPHandler {
	return &HTTPHandler{ledger: l}
}

// Routes returns the router for the /api endpoints.
func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/export", h.Export)
	r.Get("/categories", h.Categories)

	return r
}

// Export handles GET /api/export with the active group's expenses as a CSV attachment.
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.ledger.ExportCSV(&buf); err != nil {
		slog.Error("Export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.ledger.ExportFilename()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

type categoryInfo struct {
	ID string `json:"id"`
	categories.Info
}

// Categories handles GET /api/categories with the display metadata of every category.
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	all := categories.All()
	out := make([]categoryInfo, len(all))
	for i, c := range all {
		out[i] = categoryInfo{ID: string(c), Info: categories.Lookup(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
