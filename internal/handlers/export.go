package handlers

import (
	"fmt"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
	"github.com/juryboard/juryboard/internal/export"
	"github.com/juryboard/juryboard/internal/metrics"
)

type ExportHandler struct {
	service *app.Service
}

func NewExportHandler(service *app.Service) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

func writeAttachment(w http.ResponseWriter, body []byte, filename string) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(body)
}

func (h *ExportHandler) HandleJuryExport(w http.ResponseWriter, r *http.Request) {
	juryName := r.PathValue("juryName")

	settings, err := h.service.Settings()
	if err != nil {
		logger.Error.Printf("Failed to fetch settings for export: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export marks")
		return
	}
	teams, err := h.service.Store.ListTeams()
	if err != nil {
		logger.Error.Printf("Failed to fetch teams for export: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export marks")
		return
	}
	marks, err := h.service.JuryMarks(juryName)
	if err != nil {
		logger.Error.Printf("Failed to fetch marks for export: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export marks")
		return
	}

	buf, filename, err := export.JuryWorkbook(juryName, teams, marks, settings.Criteria)
	if err != nil {
		logger.Error.Printf("Failed to build jury workbook for %s: %v", juryName, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export marks")
		return
	}

	metrics.ExportsTotal.WithLabelValues("jury").Inc()
	writeAttachment(w, buf.Bytes(), filename)
}

func (h *ExportHandler) HandleLeaderboardExport(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := h.service.Leaderboard()
	if err != nil {
		logger.Error.Printf("Failed to compute leaderboard for export: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export leaderboard")
		return
	}

	buf, filename, err := export.LeaderboardWorkbook(leaderboard)
	if err != nil {
		logger.Error.Printf("Failed to build leaderboard workbook: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export leaderboard")
		return
	}

	metrics.ExportsTotal.WithLabelValues("leaderboard").Inc()
	writeAttachment(w, buf.Bytes(), filename)
}
