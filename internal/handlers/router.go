package handlers

import (
	"net/http"

	"github.com/juryboard/juryboard/internal/app"
)

// NewRouter wires every API route. The marks routes register the literal
// /all, /leaderboard and /status paths alongside the {juryName} wildcard;
// the mux prefers the literal matches.
func NewRouter(service *app.Service) *http.ServeMux {
	juries := NewJuryHandler(service)
	teams := NewTeamHandler(service)
	marks := NewMarkHandler(service)
	config := NewConfigHandler(service)
	exports := NewExportHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/juries", juries.HandleList)
	mux.HandleFunc("POST /api/juries", juries.HandleCreate)
	mux.HandleFunc("GET /api/juries/{name}", juries.HandleGet)
	mux.HandleFunc("PUT /api/juries/{name}", juries.HandleUpdateStatus)
	mux.HandleFunc("DELETE /api/juries/{name}", juries.HandleDelete)

	mux.HandleFunc("GET /api/teams", teams.HandleList)
	mux.HandleFunc("POST /api/teams", teams.HandleCreate)
	mux.HandleFunc("PUT /api/teams/{id}", teams.HandleUpdate)
	mux.HandleFunc("DELETE /api/teams/{id}", teams.HandleDelete)
	mux.HandleFunc("GET /api/teams/name/{name}", teams.HandleGetByName)

	mux.HandleFunc("GET /api/marks/all", marks.HandleAllMarks)
	mux.HandleFunc("GET /api/marks/leaderboard", marks.HandleLeaderboard)
	mux.HandleFunc("GET /api/marks/status", marks.HandleStatus)
	mux.HandleFunc("GET /api/marks/{juryName}", marks.HandleJuryMarks)
	mux.HandleFunc("POST /api/marks/{juryName}", marks.HandleSubmit)

	mux.HandleFunc("GET /api/config", config.HandleGet)
	mux.HandleFunc("POST /api/config", config.HandleUpdate)
	mux.HandleFunc("POST /api/config/reset", config.HandleReset)
	mux.HandleFunc("GET /api/config/criteria", config.HandleListCriteria)
	mux.HandleFunc("POST /api/config/criteria", config.HandleAddCriterion)
	mux.HandleFunc("DELETE /api/config/criteria", config.HandleRemoveCriterion)

	mux.HandleFunc("GET /api/export/jury/{juryName}", exports.HandleJuryExport)
	mux.HandleFunc("GET /api/export/leaderboard", exports.HandleLeaderboardExport)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})

	return mux
}
