package repository

import (
	"context"
	"errors"

	"member-search-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TeamRepo struct {
	db *Postgres
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	t := model.Team{Name: name}
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `INSERT INTO teams (name) VALUES ($1) RETURNING team_id`, name).Scan(&t.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальное ограничение по name нарушено
			return model.Team{}, ErrTeamExists
		}
		return model.Team{}, storeErr("insert team", err)
	}
	return t, nil
}

func (r *TeamRepo) GetTeamByName(ctx context.Context, name string) (model.Team, error) {
	var t model.Team
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
SELECT team_id, name
FROM teams
WHERE name = $1
`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, storeErr("get team", err)
	}
	return t, nil
}

func (r *TeamRepo) ListTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, `SELECT team_id, name FROM teams ORDER BY team_id`)
	if err != nil {
		return nil, storeErr("list teams", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, storeErr("scan team", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list teams", err)
	}
	return teams, nil
}

func getTeamByID(ctx context.Context, q DBTX, id int64) (model.Team, error) {
	var t model.Team
	err := q.QueryRow(ctx, `
SELECT team_id, name
FROM teams
WHERE team_id = $1
`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, storeErr("get team", err)
	}
	return t, nil
}
