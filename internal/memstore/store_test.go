package memstore_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-search-service/internal/memstore"
	"member-search-service/internal/model"
	"member-search-service/internal/repository"
	"member-search-service/internal/search"
)

func intPtr(v int) *int { return &v }

func idPtr(v int64) *int64 { return &v }

// newStarWars заполняет хранилище тремя командами и девятью участниками.
func newStarWars(t *testing.T) (*memstore.Store, map[string]model.Team) {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	teams := make(map[string]model.Team)
	for _, name := range []string{"ATEAM", "BTEAM", "CTEAM"} {
		team, err := s.CreateTeam(ctx, name)
		require.NoError(t, err)
		teams[name] = team
	}

	add := func(username string, age int, team string) {
		_, err := s.CreateMember(ctx, model.Member{Username: username, Age: age, TeamID: idPtr(teams[team].ID)})
		require.NoError(t, err)
	}
	add("Yoda", 224, "BTEAM")
	add("Qwigon", 125, "CTEAM")
	add("Obiwan", 83, "BTEAM")
	add("Anakin", 28, "ATEAM")
	add("AsoKa", 22, "CTEAM")
	add("Padme", 32, "ATEAM")
	add("ATEAM", 120, "ATEAM")
	add("BTEAM", 130, "BTEAM")
	add("CTEAM", 140, "CTEAM")
	return s, teams
}

// newSix: шесть участников, по двое в трёх командах.
func newSix(t *testing.T) *memstore.Store {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	var ids []int64
	for _, name := range []string{"ATEAM", "BTEAM", "CTEAM"} {
		team, err := s.CreateTeam(ctx, name)
		require.NoError(t, err)
		ids = append(ids, team.ID)
	}
	for i := 0; i < 6; i++ {
		_, err := s.CreateMember(ctx, model.Member{Username: "m" + string(rune('1'+i)), Age: 20 + i, TeamID: idPtr(ids[i%3])})
		require.NoError(t, err)
	}
	return s
}

func TestStore_TeamUniqueness(t *testing.T) {
	s := memstore.New()
	_, err := s.CreateTeam(context.Background(), "ATEAM")
	require.NoError(t, err)

	_, err = s.CreateTeam(context.Background(), "ATEAM")
	assert.ErrorIs(t, err, repository.ErrTeamExists)
}

func TestStore_CreateMemberUnknownTeam(t *testing.T) {
	s := memstore.New()
	_, err := s.CreateMember(context.Background(), model.Member{Username: "x", TeamID: idPtr(42)})
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestStore_ChangeTeamKeepsReverseIndexConsistent(t *testing.T) {
	ctx := context.Background()
	s, teams := newStarWars(t)

	yoda, err := s.FindByUsername(ctx, "Yoda")
	require.NoError(t, err)
	require.Len(t, yoda, 1)

	moved, err := s.ChangeTeam(ctx, yoda[0].ID, idPtr(teams["ATEAM"].ID))
	require.NoError(t, err)
	assert.Equal(t, teams["ATEAM"].ID, *moved.TeamID)

	a, err := s.ListByTeamID(ctx, teams["ATEAM"].ID)
	require.NoError(t, err)
	b, err := s.ListByTeamID(ctx, teams["BTEAM"].ID)
	require.NoError(t, err)

	assert.Contains(t, usernames(a), "Yoda")
	assert.NotContains(t, usernames(b), "Yoda")

	// Инвариант: member.team == t => t.members содержит member.
	for _, team := range teams {
		members, err := s.ListByTeamID(ctx, team.ID)
		require.NoError(t, err)
		for _, m := range members {
			require.NotNil(t, m.TeamID)
			assert.Equal(t, team.ID, *m.TeamID)
		}
	}

	_, err = s.ChangeTeam(ctx, yoda[0].ID, nil)
	require.NoError(t, err)
	a, err = s.ListByTeamID(ctx, teams["ATEAM"].ID)
	require.NoError(t, err)
	assert.NotContains(t, usernames(a), "Yoda")
}

func TestStore_ChangeTeamErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := newStarWars(t)

	_, err := s.ChangeTeam(ctx, 999, nil)
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)

	_, err = s.ChangeTeam(ctx, 1, idPtr(999))
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestStore_FindMemberIncludeTeam(t *testing.T) {
	ctx := context.Background()
	s, teams := newStarWars(t)

	m, err := s.FindMember(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "Yoda", m.Username)
	assert.Nil(t, m.Team)

	m, err = s.FindMember(ctx, 1, true)
	require.NoError(t, err)
	require.NotNil(t, m.Team)
	assert.Equal(t, teams["BTEAM"], *m.Team)

	_, err = s.FindMember(ctx, 1000, true)
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestStore_ReturnedMembersDoNotAliasArena(t *testing.T) {
	ctx := context.Background()
	s, _ := newStarWars(t)

	m, err := s.FindMember(ctx, 1, false)
	require.NoError(t, err)
	*m.TeamID = 999

	again, err := s.FindMember(ctx, 1, true)
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), *again.TeamID)
	assert.NotNil(t, again.Team)
}

func TestStore_SearchTeamAndAge(t *testing.T) {
	s, _ := newStarWars(t)

	rows, err := s.Search(context.Background(),
		search.Assemble(search.SearchCondition{TeamName: "BTEAM", AgeGoe: intPtr(100)}),
		search.By(search.Order{Field: search.FieldAge, Direction: search.Asc}))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "BTEAM", rows[0].Username)
	assert.Equal(t, "Yoda", rows[1].Username)
}

func TestStore_SearchSingleBTEAMMemberOver100(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b, err := s.CreateTeam(ctx, "BTEAM")
	require.NoError(t, err)
	a, err := s.CreateTeam(ctx, "ATEAM")
	require.NoError(t, err)

	for _, m := range []model.Member{
		{Username: "BTEAM", Age: 130, TeamID: idPtr(b.ID)},
		{Username: "young", Age: 30, TeamID: idPtr(b.ID)},
		{Username: "ATEAM", Age: 120, TeamID: idPtr(a.ID)},
	} {
		_, err := s.CreateMember(ctx, m)
		require.NoError(t, err)
	}

	rows, err := s.Search(ctx, search.Assemble(search.SearchCondition{TeamName: "BTEAM", AgeGoe: intPtr(100)}), search.Sort{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 130, rows[0].Age)
}

func TestStore_SortNulls(t *testing.T) {
	ctx := context.Background()
	s, _ := newStarWars(t)
	_, err := s.CreateMember(ctx, model.Member{Username: "Loner", Age: 1})
	require.NoError(t, err)

	rows, err := s.Search(ctx, search.Filter{}, search.By(search.Order{Field: search.FieldTeamName, Direction: search.Asc}))
	require.NoError(t, err)
	assert.Nil(t, rows[len(rows)-1].TeamName)

	rows, err = s.Search(ctx, search.Filter{}, search.By(search.Order{Field: search.FieldTeamName, Direction: search.Desc}))
	require.NoError(t, err)
	assert.Nil(t, rows[0].TeamName)

	rows, err = s.Search(ctx, search.Filter{}, search.By(search.Order{Field: search.FieldTeamName, Direction: search.Desc, NullsLast: true}))
	require.NoError(t, err)
	assert.Nil(t, rows[len(rows)-1].TeamName)
	assert.Equal(t, "CTEAM", *rows[0].TeamName)
}

func TestPaginator_RemainderPageSkipsCount(t *testing.T) {
	s := newSix(t)
	counting := &countingSource{Source: s}
	req, err := search.NewPageRequest(1, 5, search.Sort{})
	require.NoError(t, err)

	page, err := search.NewPaginator[model.MemberTeam](counting, nil).
		FetchPage(context.Background(), search.StrategyCountOptimized, search.Filter{}, req)
	require.NoError(t, err)

	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(6), page.Total)
	assert.Zero(t, counting.counts)
}

func TestPaginator_FullFirstPageCounts(t *testing.T) {
	s := newSix(t)
	counting := &countingSource{Source: s}
	req, err := search.NewPageRequest(0, 2, search.Sort{})
	require.NoError(t, err)

	page, err := search.NewPaginator[model.MemberTeam](counting, nil).
		FetchPage(context.Background(), search.StrategyCountOptimized, search.Assemble(search.SearchCondition{}), req)
	require.NoError(t, err)

	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 1, counting.counts)
}

func TestPaginator_StrategiesAgreeAndAreIdempotent(t *testing.T) {
	s, _ := newStarWars(t)
	p := search.NewPaginator[model.MemberTeam](s, nil)
	ctx := context.Background()

	conditions := []search.SearchCondition{
		{},
		{TeamName: "ATEAM"},
		{AgeGoe: intPtr(30), AgeLoe: intPtr(130)},
		{Username: "nobody"},
	}
	sort := search.By(search.Order{Field: search.FieldUsername, Direction: search.Desc})

	for _, cond := range conditions {
		f := search.Assemble(cond)
		for pageNo := 0; pageNo < 4; pageNo++ {
			req, err := search.NewPageRequest(pageNo, 3, sort)
			require.NoError(t, err)

			simple, err := p.FetchPage(ctx, search.StrategySimple, f, req)
			require.NoError(t, err)
			complexPage, err := p.FetchPage(ctx, search.StrategyComplex, f, req)
			require.NoError(t, err)
			optimized, err := p.FetchPage(ctx, search.StrategyCountOptimized, f, req)
			require.NoError(t, err)
			again, err := p.FetchPage(ctx, search.StrategyCountOptimized, f, req)
			require.NoError(t, err)

			assert.Equal(t, simple.Content, complexPage.Content)
			assert.Equal(t, simple.Content, optimized.Content)
			assert.Equal(t, simple.Total, complexPage.Total)
			assert.Equal(t, simple.Total, optimized.Total)
			assert.Equal(t, optimized, again)
			assert.LessOrEqual(t, len(simple.Content), req.Size)
			if len(simple.Content) > 0 {
				assert.GreaterOrEqual(t, simple.Total, req.Offset()+int64(len(simple.Content)))
			}
		}
	}
}

func TestStore_FetchOutOfRangeWindowIsEmpty(t *testing.T) {
	s, _ := newStarWars(t)
	ctx := context.Background()

	for _, w := range []search.Window{
		{Offset: -2, Limit: 2},
		{Offset: 9, Limit: 2},
		{Offset: math.MaxInt64 - 1, Limit: 2},
	} {
		rows, err := s.Fetch(ctx, search.Filter{}, search.Sort{}, w)
		require.NoError(t, err)
		assert.Empty(t, rows, "offset %d", w.Offset)
	}
}

type countingSource struct {
	search.Source[model.MemberTeam]
	counts int
}

func (c *countingSource) Count(ctx context.Context, f search.Filter, opts search.CountOptions) (int64, error) {
	c.counts++
	return c.Source.Count(ctx, f, opts)
}

func usernames(members []model.Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Username
	}
	return names
}
