package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
	"github.com/juryboard/juryboard/internal/models"
)

type JuryHandler struct {
	service *app.Service
}

func NewJuryHandler(service *app.Service) *JuryHandler {
	return &JuryHandler{
		service: service,
	}
}

func (h *JuryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	juries, err := h.service.Store.ListJuries()
	if err != nil {
		logger.Error.Printf("Failed to list juries: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch juries")
		return
	}
	writeJSON(w, http.StatusOK, juries)
}

func (h *JuryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var jury models.Jury
	if err := json.NewDecoder(r.Body).Decode(&jury); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := jury.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Jury name is required")
		return
	}

	// created pending: lifecycle flags always start false
	jury.HasSubmitted = false
	jury.Paused = false
	jury.SubmittedAt = nil

	if err := h.service.Store.CreateJury(&jury); err != nil {
		logger.Error.Printf("Failed to create jury %s: %v", jury.Name, err)
		writeMessage(w, http.StatusBadRequest, "Failed to create jury")
		return
	}
	writeJSON(w, http.StatusCreated, jury)
}

func (h *JuryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	jury, err := h.service.Store.GetJury(name)
	if err != nil {
		logger.Error.Printf("Failed to get jury %s: %v", name, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch jury")
		return
	}
	if jury == nil {
		writeMessage(w, http.StatusNotFound, "Jury not found")
		return
	}
	writeJSON(w, http.StatusOK, jury)
}

// HandleUpdateStatus upserts lifecycle flags by name. The client uses this
// for pause/resume; fields absent from the body keep their current values,
// so pausing a submitted jury does not un-submit it.
func (h *JuryHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")

	var body struct {
		HasSubmitted *bool  `json:"hasSubmitted"`
		Paused       *bool  `json:"paused"`
		SubmittedAt  *int64 `json:"submittedAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := h.service.Store.GetJury(name)
	if err != nil {
		logger.Error.Printf("Failed to load jury %s: %v", name, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch jury")
		return
	}

	// unknown jury upserts from pending state
	hasSubmitted, paused := false, false
	var submittedAt *int64
	if current != nil {
		hasSubmitted = current.HasSubmitted
		paused = current.Paused
		submittedAt = current.SubmittedAt
	}
	if body.HasSubmitted != nil {
		hasSubmitted = *body.HasSubmitted
	}
	if body.Paused != nil {
		paused = *body.Paused
	}
	if body.SubmittedAt != nil {
		submittedAt = body.SubmittedAt
	}

	jury, err := h.service.Store.UpsertJuryStatus(name, hasSubmitted, paused, submittedAt)
	if err != nil {
		logger.Error.Printf("Failed to update jury %s: %v", name, err)
		writeMessage(w, http.StatusBadRequest, "Failed to update jury")
		return
	}
	writeJSON(w, http.StatusOK, jury)
}

func (h *JuryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	if err := h.service.Store.DeleteJury(name); err != nil {
		logger.Error.Printf("Failed to delete jury %s: %v", name, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete jury")
		return
	}
	writeMessage(w, http.StatusOK, "Jury deleted successfully")
}
