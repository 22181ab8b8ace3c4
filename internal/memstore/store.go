// Package memstore хранит команды и участников в памяти.
//
// Команды и участники лежат в независимых таблицах по id; состав команды
// вычисляется через обратный индекс team_id -> {member_id}, который меняется
// вместе с Member.TeamID в одной критической секции.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"member-search-service/internal/model"
	"member-search-service/internal/repository"
	"member-search-service/internal/search"
)

type Store struct {
	mu sync.RWMutex

	teams   map[int64]model.Team
	members map[int64]model.Member
	byTeam  map[int64]map[int64]struct{}

	nextTeamID   int64
	nextMemberID int64
}

var _ search.Source[model.MemberTeam] = (*Store)(nil)

func New() *Store {
	return &Store{
		teams:   make(map[int64]model.Team),
		members: make(map[int64]model.Member),
		byTeam:  make(map[int64]map[int64]struct{}),
	}
}

// RunInTransaction и RunReadOnly просто вызывают fn: каждая операция хранилища атомарна сама по себе.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) CreateTeam(_ context.Context, name string) (model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teams {
		if t.Name == name {
			return model.Team{}, repository.ErrTeamExists
		}
	}
	s.nextTeamID++
	t := model.Team{ID: s.nextTeamID, Name: name}
	s.teams[t.ID] = t
	return t, nil
}

func (s *Store) GetTeamByName(_ context.Context, name string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.teamByName(name); ok {
		return t, nil
	}
	return model.Team{}, repository.ErrTeamNotFound
}

func (s *Store) ListTeams(_ context.Context) ([]model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	slices.SortFunc(teams, func(a, b model.Team) int { return cmp.Compare(a.ID, b.ID) })
	return teams, nil
}

func (s *Store) CreateMember(_ context.Context, m model.Member) (model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertMember(m)
}

// CreateMembers вставляет участников атомарно: при ошибке ни один не сохраняется.
func (s *Store) CreateMembers(_ context.Context, members []model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range members {
		if m.TeamID != nil {
			if _, ok := s.teams[*m.TeamID]; !ok {
				return repository.ErrTeamNotFound
			}
		}
	}
	for _, m := range members {
		if _, err := s.insertMember(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertMember(m model.Member) (model.Member, error) {
	if m.TeamID != nil {
		if _, ok := s.teams[*m.TeamID]; !ok {
			return model.Member{}, repository.ErrTeamNotFound
		}
	}
	s.nextMemberID++
	m.ID = s.nextMemberID
	m.Team = nil
	m.TeamID = copyID(m.TeamID)
	s.members[m.ID] = m
	s.link(m.ID, m.TeamID)
	return m, nil
}

// FindMember возвращает участника; команда подставляется только при includeTeam.
func (s *Store) FindMember(_ context.Context, id int64, includeTeam bool) (model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return model.Member{}, repository.ErrMemberNotFound
	}
	m.TeamID = copyID(m.TeamID)
	if includeTeam && m.TeamID != nil {
		t := s.teams[*m.TeamID]
		m.Team = &t
	}
	return m, nil
}

func (s *Store) FindByUsername(_ context.Context, username string) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(m model.Member) bool { return m.Username == username }), nil
}

func (s *Store) FindByTeamName(_ context.Context, teamName string) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teamByName(teamName)
	if !ok {
		return []model.Member{}, nil
	}
	return s.teamMembers(t.ID), nil
}

// ListByTeamID возвращает состав команды по обратному индексу.
func (s *Store) ListByTeamID(_ context.Context, teamID int64) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.teamMembers(teamID), nil
}

// ChangeTeam переводит участника в команду teamID (nil убирает из команды),
// обновляя и Member.TeamID, и обратный индекс.
func (s *Store) ChangeTeam(_ context.Context, memberID int64, teamID *int64) (model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[memberID]
	if !ok {
		return model.Member{}, repository.ErrMemberNotFound
	}
	if teamID != nil {
		if _, ok := s.teams[*teamID]; !ok {
			return model.Member{}, repository.ErrTeamNotFound
		}
	}

	s.unlink(m.ID, m.TeamID)
	m.TeamID = copyID(teamID)
	s.members[m.ID] = m
	s.link(m.ID, m.TeamID)

	m.TeamID = copyID(m.TeamID)
	return m, nil
}

func (s *Store) link(memberID int64, teamID *int64) {
	if teamID == nil {
		return
	}
	set, ok := s.byTeam[*teamID]
	if !ok {
		set = make(map[int64]struct{})
		s.byTeam[*teamID] = set
	}
	set[memberID] = struct{}{}
}

func (s *Store) unlink(memberID int64, teamID *int64) {
	if teamID == nil {
		return
	}
	set := s.byTeam[*teamID]
	delete(set, memberID)
	if len(set) == 0 {
		delete(s.byTeam, *teamID)
	}
}

func (s *Store) teamByName(name string) (model.Team, bool) {
	for _, t := range s.teams {
		if t.Name == name {
			return t, true
		}
	}
	return model.Team{}, false
}

func (s *Store) teamMembers(teamID int64) []model.Member {
	set := s.byTeam[teamID]
	res := make([]model.Member, 0, len(set))
	for id := range set {
		m := s.members[id]
		m.TeamID = copyID(m.TeamID)
		res = append(res, m)
	}
	slices.SortFunc(res, func(a, b model.Member) int { return cmp.Compare(a.ID, b.ID) })
	return res
}

func (s *Store) collect(pred func(model.Member) bool) []model.Member {
	res := make([]model.Member, 0)
	for _, m := range s.members {
		if pred(m) {
			m.TeamID = copyID(m.TeamID)
			res = append(res, m)
		}
	}
	slices.SortFunc(res, func(a, b model.Member) int { return cmp.Compare(a.ID, b.ID) })
	return res
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
