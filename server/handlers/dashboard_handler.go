package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	decomposer "github.com/aouyang1/go-decomposer"
	"github.com/goccy/go-json"
)

// DashboardHandler serves the dashboard and its data. Each request runs the pipeline from
// scratch.
type DashboardHandler struct {
	dec *decomposer.Decomposer
}

func NewDashboardHandler(dec *decomposer.Decomposer) *DashboardHandler {
	return &DashboardHandler{dec: dec}
}

// GetDashboard writes the rendered dashboard page
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := h.dec.Render(&buf); err != nil {
		slog.Error("unable to render dashboard", "error", err.Error())
		http.Error(w, "unable to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("unable to write dashboard response", "error", err.Error())
	}
}

// GetDecomposition writes the decomposition and its summary as JSON. Undefined points are
// encoded as null.
func (h *DashboardHandler) GetDecomposition(w http.ResponseWriter, r *http.Request) {
	res, err := h.dec.Run()
	if err != nil {
		slog.Error("unable to decompose series", "error", err.Error())
		http.Error(w, "unable to decompose series", http.StatusInternalServerError)
		return
	}

	out, err := json.Marshal(res)
	if err != nil {
		slog.Error("unable to encode decomposition", "error", err.Error())
		http.Error(w, "unable to encode decomposition", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		slog.Warn("unable to write decomposition response", "error", err.Error())
	}
}

func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
