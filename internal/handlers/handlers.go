package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/martinnorin/iris-api/internal/model"
)

type Handler struct {
	loader *model.Loader
	log    *slog.Logger
}

func NewHandler(loader *model.Loader, log *slog.Logger) *Handler {
	return &Handler{
		loader: loader,
		log:    log,
	}
}

// Root is the liveness check.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Hello World!")
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

type echoRequest struct {
	Name string `json:"name"`
	// json.Number so an integer age renders as "23", not "23.000000".
	Age json.Number `json:"age"`
}

// Echo greets the caller back with the posted name and age.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req echoRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Hello %s. You're %s years old.", req.Name, req.Age)
}

// Predict loads the classifier artifact and labels the posted feature rows.
// The response is the labels rendered numpy-style: "[0]", "[0 1 2]".
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req model.PredictionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if len(req.X) == 0 {
		respondError(w, "No feature rows provided", http.StatusBadRequest)
		return
	}

	clf, err := h.loader.Load()
	if err != nil {
		h.log.Error("model load failed", "path", h.loader.ModelPath(), "error", err)
		respondError(w, "Model unavailable", http.StatusInternalServerError)
		return
	}

	expected := clf.InputWidth()
	for i, row := range req.X {
		if len(row) != expected {
			respondError(w, fmt.Sprintf("Row %d: expected %d values, got %d", i, expected, len(row)),
				http.StatusBadRequest)
			return
		}
	}

	labels, err := clf.Predict(req.X)
	if err != nil {
		h.log.Error("prediction failed", "error", err)
		respondError(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, labels)
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}
