package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
	"github.com/juryboard/juryboard/internal/metrics"
	"github.com/juryboard/juryboard/internal/models"
)

type MarkHandler struct {
	service *app.Service
}

func NewMarkHandler(service *app.Service) *MarkHandler {
	return &MarkHandler{
		service: service,
	}
}

// HandleSubmit replaces the named jury's whole mark batch and flips the
// jury to submitted.
func (h *MarkHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(duration)
	}()

	juryName := r.PathValue("juryName")
	if juryName == "" {
		writeMessage(w, http.StatusBadRequest, "Jury name is required")
		return
	}

	var body struct {
		Marks []models.MarkSubmission `json:"marks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.service.SubmitMarks(juryName, body.Marks)
	if err != nil {
		logger.Error.Printf("Failed to save marks for jury %s: %v", juryName, err)
		writeMessage(w, http.StatusBadRequest, "Failed to save marks")
		return
	}

	metrics.MarkSubmissionsTotal.WithLabelValues(juryName).Inc()

	writeJSON(w, http.StatusOK, saved)
}

func (h *MarkHandler) HandleJuryMarks(w http.ResponseWriter, r *http.Request) {
	juryName := r.PathValue("juryName")

	marks, err := h.service.JuryMarks(juryName)
	if err != nil {
		logger.Error.Printf("Failed to fetch marks for jury %s: %v", juryName, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch marks")
		return
	}
	writeJSON(w, http.StatusOK, marks)
}

func (h *MarkHandler) HandleAllMarks(w http.ResponseWriter, r *http.Request) {
	marks, err := h.service.AllMarks()
	if err != nil {
		logger.Error.Printf("Failed to fetch marks: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch marks")
		return
	}
	writeJSON(w, http.StatusOK, marks)
}

func (h *MarkHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := h.service.Leaderboard()
	if err != nil {
		logger.Error.Printf("Failed to compute leaderboard: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to compute leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, leaderboard)
}

func (h *MarkHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.SubmissionStatus()
	if err != nil {
		logger.Error.Printf("Failed to fetch submission status: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch status")
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}
