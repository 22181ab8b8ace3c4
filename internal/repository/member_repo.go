package repository

import (
	"context"
	"errors"
	"fmt"

	"member-search-service/internal/model"
	"member-search-service/internal/search"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MemberRepo реализует репозиторий участников на базе PostgreSQL.
// Он же служит search.Source для постраничных выборок проекции MemberTeam.
type MemberRepo struct {
	db *Postgres
}

var _ search.Source[model.MemberTeam] = (*MemberRepo)(nil)

// NewMemberRepo создаёт новый экземпляр MemberRepo c переданным подключением к PostgreSQL.
func NewMemberRepo(db *Postgres) *MemberRepo {
	return &MemberRepo{db: db}
}

// Search возвращает все строки, подходящие под фильтр, без разбиения на страницы.
func (r *MemberRepo) Search(ctx context.Context, f search.Filter, s search.Sort) ([]model.MemberTeam, error) {
	var args queryArgs
	where, err := whereSQL(f, &args)
	if err != nil {
		return nil, err
	}
	order, err := orderSQL(s)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s\nFROM %s\n%s\n%s", memberTeamColumns, memberTeamFrom, where, order)
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, storeErr("search members", err)
	}
	defer rows.Close()

	res := make([]model.MemberTeam, 0)
	for rows.Next() {
		mt, err := scanMemberTeam(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("search members", err)
	}
	return res, nil
}

// Fetch возвращает окно w выборки.
func (r *MemberRepo) Fetch(ctx context.Context, f search.Filter, s search.Sort, w search.Window) ([]model.MemberTeam, error) {
	q, args, err := buildSelect(f, s, w, false)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, storeErr("fetch members", err)
	}
	defer rows.Close()

	res := make([]model.MemberTeam, 0, w.Limit)
	for rows.Next() {
		mt, err := scanMemberTeam(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("fetch members", err)
	}
	return res, nil
}

// FetchWithTotal возвращает окно и общее число строк одним запросом (COUNT(*) OVER()).
// Если окно оказалось за концом выборки, total получается отдельным count-запросом.
func (r *MemberRepo) FetchWithTotal(ctx context.Context, f search.Filter, s search.Sort, w search.Window) ([]model.MemberTeam, int64, error) {
	q, args, err := buildSelect(f, s, w, true)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, 0, storeErr("fetch members with total", err)
	}
	defer rows.Close()

	var total int64
	res := make([]model.MemberTeam, 0, w.Limit)
	for rows.Next() {
		var mt model.MemberTeam
		if err := rows.Scan(&mt.MemberID, &mt.Username, &mt.Age, &mt.TeamID, &mt.TeamName, &total); err != nil {
			return nil, 0, storeErr("scan member", err)
		}
		res = append(res, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("fetch members with total", err)
	}

	if len(res) == 0 && w.Offset > 0 {
		total, err = r.Count(ctx, f, search.CountOptions{JoinTeam: true})
		if err != nil {
			return nil, 0, err
		}
	}
	return res, total, nil
}

// Count возвращает число участников, подходящих под фильтр.
func (r *MemberRepo) Count(ctx context.Context, f search.Filter, opts search.CountOptions) (int64, error) {
	q, args, err := buildCount(f, opts.JoinTeam)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, storeErr("count members", err)
	}
	return total, nil
}

// FindMember возвращает участника по id. Команда подгружается вторым запросом,
// только если includeTeam = true. Если участник не найден, возвращает ErrMemberNotFound.
func (r *MemberRepo) FindMember(ctx context.Context, id int64, includeTeam bool) (model.Member, error) {
	q := r.db.GetQueryExecutor(ctx)

	var m model.Member
	err := q.QueryRow(ctx, `
SELECT member_id, username, age, team_id
FROM members
WHERE member_id = $1
`, id).Scan(&m.ID, &m.Username, &m.Age, &m.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Member{}, ErrMemberNotFound
		}
		return model.Member{}, storeErr("get member", err)
	}

	if includeTeam && m.TeamID != nil {
		team, err := getTeamByID(ctx, q, *m.TeamID)
		if err != nil {
			return model.Member{}, err
		}
		m.Team = &team
	}
	return m, nil
}

// FindByUsername возвращает участников с заданным именем.
func (r *MemberRepo) FindByUsername(ctx context.Context, username string) ([]model.Member, error) {
	return r.listMembers(ctx, "find members by username", `
SELECT member_id, username, age, team_id
FROM members
WHERE username = $1
ORDER BY member_id
`, username)
}

// FindByTeamName возвращает участников команды с заданным именем.
func (r *MemberRepo) FindByTeamName(ctx context.Context, teamName string) ([]model.Member, error) {
	return r.listMembers(ctx, "find members by team name", `
SELECT m.member_id, m.username, m.age, m.team_id
FROM members m
JOIN teams t ON t.team_id = m.team_id
WHERE t.name = $1
ORDER BY m.member_id
`, teamName)
}

// ListByTeamID возвращает участников команды по её id.
func (r *MemberRepo) ListByTeamID(ctx context.Context, teamID int64) ([]model.Member, error) {
	return r.listMembers(ctx, "list team members", `
SELECT member_id, username, age, team_id
FROM members
WHERE team_id = $1
ORDER BY member_id
`, teamID)
}

func (r *MemberRepo) listMembers(ctx context.Context, op, sql string, args ...any) ([]model.Member, error) {
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	res := make([]model.Member, 0)
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Username, &m.Age, &m.TeamID); err != nil {
			return nil, storeErr(op, err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return res, nil
}

// CreateMember сохраняет участника. Если TeamID указывает на несуществующую команду, возвращает ErrTeamNotFound.
func (r *MemberRepo) CreateMember(ctx context.Context, m model.Member) (model.Member, error) {
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
INSERT INTO members (username, age, team_id)
VALUES ($1, $2, $3)
RETURNING member_id
`, m.Username, m.Age, m.TeamID).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Member{}, ErrTeamNotFound
		}
		return model.Member{}, storeErr("insert member", err)
	}
	m.Team = nil
	return m, nil
}

// CreateMembers вставляет участников одним батчем. Используется при заполнении тестовыми данными.
func (r *MemberRepo) CreateMembers(ctx context.Context, members []model.Member) error {
	if len(members) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range members {
		batch.Queue(`
INSERT INTO members (username, age, team_id)
VALUES ($1, $2, $3)
`, m.Username, m.Age, m.TeamID)
	}

	br := r.db.GetQueryExecutor(ctx).SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isForeignKeyViolation(err) {
			return ErrTeamNotFound
		}
		return storeErr("insert members", err)
	}
	return nil
}

// ChangeTeam переводит участника в другую команду (teamID = nil убирает из команды).
func (r *MemberRepo) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (model.Member, error) {
	var m model.Member
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
UPDATE members
SET team_id = $2
WHERE member_id = $1
RETURNING member_id, username, age, team_id
`, memberID, teamID).Scan(&m.ID, &m.Username, &m.Age, &m.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Member{}, ErrMemberNotFound
		}
		if isForeignKeyViolation(err) {
			return model.Member{}, ErrTeamNotFound
		}
		return model.Member{}, storeErr("change team", err)
	}
	return m, nil
}

func scanMemberTeam(rows pgx.Rows) (model.MemberTeam, error) {
	var mt model.MemberTeam
	if err := rows.Scan(&mt.MemberID, &mt.Username, &mt.Age, &mt.TeamID, &mt.TeamName); err != nil {
		return model.MemberTeam{}, storeErr("scan member", err)
	}
	return mt, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
