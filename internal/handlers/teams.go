package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
	"github.com/juryboard/juryboard/internal/models"
)

type TeamHandler struct {
	service *app.Service
}

func NewTeamHandler(service *app.Service) *TeamHandler {
	return &TeamHandler{
		service: service,
	}
}

func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.Store.ListTeams()
	if err != nil {
		logger.Error.Printf("Failed to list teams: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch teams")
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var team models.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := team.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Team name is required")
		return
	}

	if err := h.service.Store.CreateTeam(&team); err != nil {
		logger.Error.Printf("Failed to create team %s: %v", team.Name, err)
		writeMessage(w, http.StatusBadRequest, "Failed to create team")
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	var team models.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	team.ID = id
	if err := team.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Team name is required")
		return
	}

	updated, err := h.service.Store.UpdateTeam(&team)
	if err != nil {
		logger.Error.Printf("Failed to update team %d: %v", id, err)
		writeMessage(w, http.StatusBadRequest, "Failed to update team")
		return
	}
	if updated == nil {
		writeMessage(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TeamHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RequireAdmin(r); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	if err := h.service.Store.DeleteTeam(id); err != nil {
		logger.Error.Printf("Failed to delete team %d: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete team")
		return
	}
	writeMessage(w, http.StatusOK, "Team deleted successfully")
}

func (h *TeamHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	team, err := h.service.Store.GetTeamByName(name)
	if err != nil {
		logger.Error.Printf("Failed to get team %s: %v", name, err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	if team == nil {
		writeMessage(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}
