package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"member-search-service/internal/model"
	"member-search-service/internal/search"
	"member-search-service/internal/service"
)

func (h *Handler) handleMembersSearch(w http.ResponseWriter, r *http.Request) {
	h.searchMembers(w, r, "members_search", h.Members.Search)
}

func (h *Handler) handleMembersSearchBuilder(w http.ResponseWriter, r *http.Request) {
	h.searchMembers(w, r, "members_search_builder", h.Members.SearchByBuilder)
}

type searchFunc func(ctx context.Context, cond search.SearchCondition, sort search.Sort) ([]model.MemberTeam, error)

func (h *Handler) searchMembers(w http.ResponseWriter, r *http.Request, handlerName string, find searchFunc) {
	q := r.URL.Query()
	cond, err := ParseCondition(q)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	sort, err := ParseSort(q["sort"])
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	rows, err := find(r.Context(), cond, sort)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if rows == nil {
		rows = []model.MemberTeam{}
	}
	writeJSON(w, http.StatusOK, memberTeamsResponse{Members: rows})
}

// handleMembersPage отдаёт страницу поиска; стратегия подсчёта total зависит от версии API.
func (h *Handler) handleMembersPage(strategy search.Strategy) http.HandlerFunc {
	handlerName := "members_page_" + strategy.String()

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cond, err := ParseCondition(q)
		if err != nil {
			h.writeError(w, handlerName, err)
			return
		}
		req, err := ParsePageRequest(q, h.opts.DefaultPageSize, h.opts.MaxPageSize)
		if err != nil {
			h.writeError(w, handlerName, err)
			return
		}

		page, err := h.Members.SearchPage(r.Context(), strategy, cond, req)
		if err != nil {
			h.writeError(w, handlerName, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func (h *Handler) handleMembersByUsername(w http.ResponseWriter, r *http.Request) {
	const handlerName = "members_by_username"

	members, err := h.Members.FindByUsername(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, membersResponse{Members: nonNil(members)})
}

func (h *Handler) handleMemberGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "member_get"

	id, err := ParseMemberID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	includeTeam := false
	if raw := r.URL.Query().Get("include_team"); raw != "" {
		if includeTeam, err = strconv.ParseBool(raw); err != nil {
			h.writeError(w, handlerName, service.ErrBadRequest("include_team must be a boolean"))
			return
		}
	}

	m, err := h.Members.GetMember(r.Context(), id, includeTeam)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResponse{Member: m})
}

func (h *Handler) handleMemberCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "member_create"

	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if err := ValidateCreateMemberRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	m, err := h.Members.CreateMember(r.Context(), model.Member{
		Username: req.Username,
		Age:      req.Age,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberResponse{Member: m})
}

func (h *Handler) handleMemberChangeTeam(w http.ResponseWriter, r *http.Request) {
	const handlerName = "member_change_team"

	id, err := ParseMemberID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req changeTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	m, err := h.Members.ChangeTeam(r.Context(), id, req.TeamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResponse{Member: m})
}

func nonNil(members []model.Member) []model.Member {
	if members == nil {
		return []model.Member{}
	}
	return members
}
