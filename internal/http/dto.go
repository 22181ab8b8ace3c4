// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "member-search-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type createTeamRequest struct {
	TeamName string `json:"team_name"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type teamsResponse struct {
	Teams []model.Team `json:"teams"`
}

type createMemberRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamID   *int64 `json:"team_id"`
}

type changeTeamRequest struct {
	TeamID *int64 `json:"team_id"`
}

type memberResponse struct {
	Member model.Member `json:"member"`
}

type membersResponse struct {
	Members []model.Member `json:"members"`
}

type memberTeamsResponse struct {
	Members []model.MemberTeam `json:"members"`
}
