// Package seed заполняет хранилище тестовыми командами и участниками.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"member-search-service/internal/model"
	"member-search-service/internal/repository"
)

const (
	TeamA = "ATEAM"
	TeamB = "BTEAM"

	// DefaultMembers: число участников по умолчанию.
	DefaultMembers = 100
)

type TeamCreator interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
}

type MemberCreator interface {
	CreateMembers(ctx context.Context, members []model.Member) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seeder создаёт команды ATEAM и BTEAM и участников member1..memberN в возрасте i+10:
// чётные попадают в ATEAM, нечётные в BTEAM. Повторный запуск не идемпотентен.
type Seeder struct {
	teams   TeamCreator
	members MemberCreator
	tx      TransactionManager
	log     *slog.Logger
}

func New(teams TeamCreator, members MemberCreator, tx TransactionManager, log *slog.Logger) *Seeder {
	return &Seeder{teams: teams, members: members, tx: tx, log: log}
}

// Members строит список участников без сохранения.
func Members(n int, teamA, teamB model.Team) []model.Member {
	members := make([]model.Member, 0, n)
	for i := 1; i <= n; i++ {
		team := teamB
		if i%2 == 0 {
			team = teamA
		}
		teamID := team.ID
		members = append(members, model.Member{
			Username: fmt.Sprintf("member%d", i),
			Age:      i + 10,
			TeamID:   &teamID,
		})
	}
	return members
}

// Run выполняет заполнение в одной транзакции.
func (s *Seeder) Run(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("seed: negative member count %d", n)
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		teamA, err := s.teams.CreateTeam(ctx, TeamA)
		if err != nil {
			return fmt.Errorf("create team %s: %w", TeamA, err)
		}
		teamB, err := s.teams.CreateTeam(ctx, TeamB)
		if err != nil {
			return fmt.Errorf("create team %s: %w", TeamB, err)
		}
		if err := s.members.CreateMembers(ctx, Members(n, teamA, teamB)); err != nil {
			return fmt.Errorf("create members: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("sample data seeded",
		slog.Int("teams", 2),
		slog.Int("members", n),
	)
	return nil
}

// RunOnce: Run, который пропускает заполнение, если команды уже созданы прошлым запуском.
func (s *Seeder) RunOnce(ctx context.Context, n int) error {
	err := s.Run(ctx, n)
	if errors.Is(err, repository.ErrTeamExists) {
		s.log.Info("sample data already present, skipping seed", slog.String("team", TeamA))
		return nil
	}
	return err
}
