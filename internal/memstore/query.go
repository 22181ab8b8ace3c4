package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"member-search-service/internal/model"
	"member-search-service/internal/search"
)

// row: строка left join members/teams для проверки фильтром.
type row model.MemberTeam

func (r row) FieldValue(f search.Field) (any, bool) {
	switch f {
	case search.FieldMemberID:
		return r.MemberID, true
	case search.FieldUsername:
		return r.Username, true
	case search.FieldAge:
		return r.Age, true
	case search.FieldTeamID:
		if r.TeamID == nil {
			return nil, false
		}
		return *r.TeamID, true
	case search.FieldTeamName:
		if r.TeamName == nil {
			return nil, false
		}
		return *r.TeamName, true
	}
	return nil, false
}

// Search возвращает все строки, подходящие под фильтр.
func (s *Store) Search(_ context.Context, f search.Filter, sort search.Sort) ([]model.MemberTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selectRows(f, sort)
}

func (s *Store) Fetch(_ context.Context, f search.Filter, sort search.Sort, w search.Window) ([]model.MemberTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.selectRows(f, sort)
	if err != nil {
		return nil, err
	}
	return window(rows, w), nil
}

func (s *Store) FetchWithTotal(_ context.Context, f search.Filter, sort search.Sort, w search.Window) ([]model.MemberTeam, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.selectRows(f, sort)
	if err != nil {
		return nil, 0, err
	}
	return window(rows, w), int64(len(rows)), nil
}

// Count не зависит от opts.JoinTeam: команда у участника одна, join строк не размножает.
func (s *Store) Count(_ context.Context, f search.Filter, _ search.CountOptions) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, m := range s.members {
		if f.Match(row(s.joinTeam(m))) {
			n++
		}
	}
	return n, nil
}

func (s *Store) joinTeam(m model.Member) model.MemberTeam {
	if m.TeamID == nil {
		return model.NewMemberTeam(m, nil)
	}
	t, ok := s.teams[*m.TeamID]
	if !ok {
		return model.NewMemberTeam(m, nil)
	}
	return model.NewMemberTeam(m, &t)
}

func (s *Store) selectRows(f search.Filter, sort search.Sort) ([]model.MemberTeam, error) {
	less, err := comparator(sort)
	if err != nil {
		return nil, err
	}

	res := make([]model.MemberTeam, 0)
	for _, m := range s.members {
		mt := s.joinTeam(m)
		if f.Match(row(mt)) {
			res = append(res, mt)
		}
	}
	slices.SortFunc(res, less)
	return res, nil
}

func window(rows []model.MemberTeam, w search.Window) []model.MemberTeam {
	if w.Offset < 0 || w.Offset >= int64(len(rows)) {
		return []model.MemberTeam{}
	}
	end := w.Offset + int64(w.Limit)
	if end > int64(len(rows)) {
		end = int64(len(rows))
	}
	return slices.Clone(rows[w.Offset:end])
}

// comparator повторяет порядок PostgreSQL: NULL считается больше любого значения,
// поэтому при ASC он в конце, при DESC в начале, если не задан NullsLast.
// Последний ключ: member_id по возрастанию.
func comparator(sort search.Sort) (func(a, b model.MemberTeam) int, error) {
	keys := make([]func(a, b model.MemberTeam) int, 0, len(sort.Orders)+1)
	for _, o := range sort.Orders {
		key, err := orderKey(o)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	keys = append(keys, func(a, b model.MemberTeam) int { return cmp.Compare(a.MemberID, b.MemberID) })

	return func(a, b model.MemberTeam) int {
		for _, k := range keys {
			if c := k(a, b); c != 0 {
				return c
			}
		}
		return 0
	}, nil
}

func orderKey(o search.Order) (func(a, b model.MemberTeam) int, error) {
	desc := o.Direction == search.Desc
	nullsLast := o.NullsLast || !desc

	switch o.Field {
	case search.FieldMemberID:
		return directed(desc, func(a, b model.MemberTeam) int { return cmp.Compare(a.MemberID, b.MemberID) }), nil
	case search.FieldUsername:
		return directed(desc, func(a, b model.MemberTeam) int { return cmp.Compare(a.Username, b.Username) }), nil
	case search.FieldAge:
		return directed(desc, func(a, b model.MemberTeam) int { return cmp.Compare(a.Age, b.Age) }), nil
	case search.FieldTeamID:
		return nullable(desc, nullsLast, func(m model.MemberTeam) *int64 { return m.TeamID }), nil
	case search.FieldTeamName:
		return nullable(desc, nullsLast, func(m model.MemberTeam) *string { return m.TeamName }), nil
	}
	return nil, fmt.Errorf("%w: unknown field %q", search.ErrInvalidSort, o.Field)
}

func directed(desc bool, c func(a, b model.MemberTeam) int) func(a, b model.MemberTeam) int {
	if !desc {
		return c
	}
	return func(a, b model.MemberTeam) int { return -c(a, b) }
}

func nullable[V cmp.Ordered](desc, nullsLast bool, get func(model.MemberTeam) *V) func(a, b model.MemberTeam) int {
	return func(a, b model.MemberTeam) int {
		va, vb := get(a), get(b)
		switch {
		case va == nil && vb == nil:
			return 0
		case va == nil:
			if nullsLast {
				return 1
			}
			return -1
		case vb == nil:
			if nullsLast {
				return -1
			}
			return 1
		}
		c := cmp.Compare(*va, *vb)
		if desc {
			return -c
		}
		return c
	}
}
