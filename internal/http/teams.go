package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"member-search-service/internal/model"
	"member-search-service/internal/service"
)

func (h *Handler) handleTeamAdd(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_add"

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateTeamName(req.TeamName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.CreateTeam(r.Context(), req.TeamName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	teams, err := h.Teams.ListTeams(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	writeJSON(w, http.StatusOK, teamsResponse{Teams: teams})
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	teamName := chi.URLParam(r, "name")
	if err := ValidateTeamName(teamName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), teamName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	team.Members = nonNil(team.Members)
	writeJSON(w, http.StatusOK, team)
}

func (h *Handler) handleTeamMembers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_members"

	teamName := chi.URLParam(r, "name")
	if err := ValidateTeamName(teamName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	members, err := h.Members.FindByTeamName(r.Context(), teamName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, membersResponse{Members: nonNil(members)})
}
