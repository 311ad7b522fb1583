package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
)

type ConfigHandler struct {
	service *app.Service
}

func NewConfigHandler(service *app.Service) *ConfigHandler {
	return &ConfigHandler{
		service: service,
	}
}

func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings()
	if err != nil {
		logger.Error.Printf("Failed to fetch settings: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch configuration")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *ConfigHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch app.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.service.UpdateSettings(patch)
	if err != nil {
		logger.Error.Printf("Failed to update settings: %v", err)
		writeMessage(w, http.StatusBadRequest, "Failed to update configuration")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *ConfigHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settings, err := h.service.ResetSettings()
	if err != nil {
		logger.Error.Printf("Failed to reset settings: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to reset configuration")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *ConfigHandler) HandleListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.service.ListCriteria()
	if err != nil {
		logger.Error.Printf("Failed to list criteria: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch criteria")
		return
	}
	writeJSON(w, http.StatusOK, criteria)
}

func (h *ConfigHandler) HandleAddCriterion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Criterion string `json:"criterion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Criterion == "" {
		writeMessage(w, http.StatusBadRequest, "Criterion is required")
		return
	}

	criteria, err := h.service.AddCriterion(body.Criterion)
	if err != nil {
		logger.Error.Printf("Failed to add criterion %q: %v", body.Criterion, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to add criterion")
		return
	}
	writeJSON(w, http.StatusOK, criteria)
}

// HandleRemoveCriterion reads the positional index from the request body.
// A DELETE with a body is unusual but the marking client sends it that way.
func (h *ConfigHandler) HandleRemoveCriterion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	criteria, err := h.service.RemoveCriterionAt(body.Index)
	if errors.Is(err, app.ErrCriterionIndex) {
		writeMessage(w, http.StatusBadRequest, "Criterion index out of range")
		return
	}
	if err != nil {
		logger.Error.Printf("Failed to remove criterion at %d: %v", body.Index, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to remove criterion")
		return
	}
	writeJSON(w, http.StatusOK, criteria)
}
