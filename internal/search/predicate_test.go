package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"member-search-service/internal/search"
)

type row struct {
	username string
	age      int
	teamName *string
}

func (r row) FieldValue(f search.Field) (any, bool) {
	switch f {
	case search.FieldUsername:
		return r.username, true
	case search.FieldAge:
		return r.age, true
	case search.FieldTeamName:
		if r.teamName == nil {
			return nil, false
		}
		return *r.teamName, true
	}
	return nil, false
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func fixtureRows() []row {
	return []row{
		{username: "Yoda", age: 224, teamName: strPtr("BTEAM")},
		{username: "Qwigon", age: 125, teamName: strPtr("CTEAM")},
		{username: "Obiwan", age: 83, teamName: strPtr("BTEAM")},
		{username: "Anakin", age: 28, teamName: strPtr("ATEAM")},
		{username: "AsoKa", age: 22, teamName: strPtr("CTEAM")},
		{username: "Padme", age: 32, teamName: strPtr("ATEAM")},
		{username: "BTEAM", age: 130, teamName: strPtr("BTEAM")},
		{username: "Loner", age: 40},
	}
}

func TestClauseFunctions(t *testing.T) {
	tests := []struct {
		name   string
		opt    search.Opt
		want   search.Clause
		wantOK bool
	}{
		{name: "username set", opt: search.UsernameEq("Yoda"), want: search.Clause{Field: search.FieldUsername, Op: search.OpEq, Value: "Yoda"}, wantOK: true},
		{name: "username empty", opt: search.UsernameEq("")},
		{name: "username blank", opt: search.UsernameEq("   ")},
		{name: "team name set", opt: search.TeamNameEq("ATEAM"), want: search.Clause{Field: search.FieldTeamName, Op: search.OpEq, Value: "ATEAM"}, wantOK: true},
		{name: "team name empty", opt: search.TeamNameEq("")},
		{name: "age goe zero is a real bound", opt: search.AgeGoe(intPtr(0)), want: search.Clause{Field: search.FieldAge, Op: search.OpGoe, Value: 0}, wantOK: true},
		{name: "age goe nil", opt: search.AgeGoe(nil)},
		{name: "age loe set", opt: search.AgeLoe(intPtr(30)), want: search.Clause{Field: search.FieldAge, Op: search.OpLoe, Value: 30}, wantOK: true},
		{name: "age loe nil", opt: search.AgeLoe(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.opt.Get()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSimpleCondition_NonPositiveAgeIsUnset(t *testing.T) {
	cond := search.SimpleCondition{Username: "a", AgeGoe: 0, AgeLoe: -5}.Condition()
	assert.Nil(t, cond.AgeGoe)
	assert.Nil(t, cond.AgeLoe)

	cond = search.SimpleCondition{AgeGoe: 10, AgeLoe: 40}.Condition()
	assert.Equal(t, 10, *cond.AgeGoe)
	assert.Equal(t, 40, *cond.AgeLoe)
}

func TestAssemble_EmptyConditionMatchesEverything(t *testing.T) {
	f := search.Assemble(search.SearchCondition{})
	assert.True(t, f.IsEmpty())
	for _, r := range fixtureRows() {
		assert.True(t, f.Match(r), r.username)
	}
}

func TestAssemble_ConjunctionOfPresentClauses(t *testing.T) {
	conditions := []search.SearchCondition{
		{TeamName: "BTEAM", AgeGoe: intPtr(100)},
		{Username: "Padme"},
		{AgeGoe: intPtr(25), AgeLoe: intPtr(130)},
		{TeamName: "CTEAM", AgeLoe: intPtr(50)},
		{Username: "Loner", TeamName: "ATEAM"},
		{AgeLoe: intPtr(10)},
	}

	for _, cond := range conditions {
		f := search.Assemble(cond)
		opts := []search.Opt{
			search.UsernameEq(cond.Username),
			search.TeamNameEq(cond.TeamName),
			search.AgeGoe(cond.AgeGoe),
			search.AgeLoe(cond.AgeLoe),
		}
		for _, r := range fixtureRows() {
			want := true
			for _, o := range opts {
				if c, ok := o.Get(); ok && !c.Match(r) {
					want = false
				}
			}
			assert.Equal(t, want, f.Match(r), "condition %+v row %s", cond, r.username)
		}
	}
}

func TestAssemble_TeamAndAgeScenario(t *testing.T) {
	f := search.Assemble(search.SearchCondition{TeamName: "BTEAM", AgeGoe: intPtr(100)})

	var matched []string
	for _, r := range fixtureRows() {
		if f.Match(r) {
			matched = append(matched, r.username)
		}
	}
	assert.Equal(t, []string{"Yoda", "BTEAM"}, matched)
}

func TestAssemble_NullTeamNeverMatchesTeamClause(t *testing.T) {
	f := search.And(search.TeamNameEq("ATEAM"))
	assert.False(t, f.Match(row{username: "Loner", age: 40}))
}

func TestAssembleWithBuilder_EqualsAssemble(t *testing.T) {
	conditions := []search.SearchCondition{
		{},
		{Username: "Yoda"},
		{TeamName: "ATEAM", AgeGoe: intPtr(1), AgeLoe: intPtr(99)},
		{Username: " ", TeamName: ""},
	}
	for _, cond := range conditions {
		assert.Equal(t, search.Assemble(cond), search.AssembleWithBuilder(cond))
	}
}

func TestFilter_Uses(t *testing.T) {
	assert.False(t, search.Assemble(search.SearchCondition{Username: "x"}).Uses(search.Field.TeamField))
	assert.True(t, search.Assemble(search.SearchCondition{TeamName: "x"}).Uses(search.Field.TeamField))
}

func TestFilter_KeyDistinguishesValues(t *testing.T) {
	a := search.Assemble(search.SearchCondition{Username: "a&b"})
	b := search.Assemble(search.SearchCondition{Username: "a", TeamName: "b"})
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, "", search.Filter{}.Key())
}
