package service

import (
	"context"
	"errors"
	"strings"

	"member-search-service/internal/model"
	"member-search-service/internal/repository"
)

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeamByName(ctx context.Context, name string) (model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
}

// TeamMemberLister возвращает состав команды по её id.
type TeamMemberLister interface {
	ListByTeamID(ctx context.Context, teamID int64) ([]model.Member, error)
}

// TeamWithMembers: команда вместе с вычисленным составом.
type TeamWithMembers struct {
	model.Team
	Members []model.Member `json:"members"`
}

// TeamService содержит бизнес-логику по созданию и получению команд.
type TeamService struct {
	repo    TeamRepository
	members TeamMemberLister
	tx      TransactionManager
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(repo TeamRepository, members TeamMemberLister, tx TransactionManager) *TeamService {
	return &TeamService{repo: repo, members: members, tx: tx}
}

// CreateTeam создаёт пустую команду.
// В случае конфликтов по имени команды возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	if strings.TrimSpace(name) == "" {
		return model.Team{}, ErrBadRequest("team_name must not be empty")
	}

	team, err := s.repo.CreateTeam(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return model.Team{}, ErrDomain("TEAM_EXISTS", "team_name already exists")
		}
		return model.Team{}, internal("failed to create team", err)
	}
	return team, nil
}

// GetTeam возвращает команду по имени вместе с её участниками.
func (s *TeamService) GetTeam(ctx context.Context, name string) (TeamWithMembers, error) {
	if strings.TrimSpace(name) == "" {
		return TeamWithMembers{}, ErrBadRequest("team_name is required")
	}

	var res TeamWithMembers
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		team, err := s.repo.GetTeamByName(ctx, name)
		if err != nil {
			return err
		}
		members, err := s.members.ListByTeamID(ctx, team.ID)
		if err != nil {
			return err
		}
		res = TeamWithMembers{Team: team, Members: members}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return TeamWithMembers{}, ErrNotFound("team not found")
		}
		return TeamWithMembers{}, internal("failed to get team", err)
	}
	return res, nil
}

// ListTeams возвращает все команды.
func (s *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, internal("failed to list teams", err)
	}
	return teams, nil
}
