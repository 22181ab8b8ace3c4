package service

import (
	"context"
	"errors"
	"strings"

	"member-search-service/internal/cache"
	"member-search-service/internal/model"
	"member-search-service/internal/repository"
	"member-search-service/internal/search"
)

// MemberRepository описывает контракт репозитория участников для бизнес-слоя.
type MemberRepository interface {
	search.Source[model.MemberTeam]
	Search(ctx context.Context, f search.Filter, s search.Sort) ([]model.MemberTeam, error)
	FindMember(ctx context.Context, id int64, includeTeam bool) (model.Member, error)
	FindByUsername(ctx context.Context, username string) ([]model.Member, error)
	FindByTeamName(ctx context.Context, teamName string) ([]model.Member, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]model.Member, error)
	CreateMember(ctx context.Context, m model.Member) (model.Member, error)
	ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (model.Member, error)
}

// TransactionManager описывает единицу работы: запись и чтение одним снимком.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MemberService содержит поиск участников (со страницами и без) и операции над ними.
type MemberService struct {
	repo      MemberRepository
	tx        TransactionManager
	paginator *search.Paginator[model.MemberTeam]
	counts    *cache.CountCache
}

// NewMemberService создаёт сервис. observer и counts могут быть nil;
// при counts != nil результаты count-запросов кэшируются до ближайшей записи.
func NewMemberService(repo MemberRepository, tx TransactionManager, observer search.Observer, counts *cache.CountCache) *MemberService {
	var src search.Source[model.MemberTeam] = repo
	if counts != nil {
		src = cache.WithCountCache(src, counts)
	}
	return &MemberService{
		repo:      repo,
		tx:        tx,
		paginator: search.NewPaginator(src, observer),
		counts:    counts,
	}
}

// Search возвращает всех участников, подходящих под условие, без разбиения на страницы.
func (s *MemberService) Search(ctx context.Context, cond search.SearchCondition, sort search.Sort) ([]model.MemberTeam, error) {
	return s.search(ctx, search.Assemble(cond), sort)
}

// SearchByBuilder: то же, что Search, но фильтр собирается через search.Builder.
func (s *MemberService) SearchByBuilder(ctx context.Context, cond search.SearchCondition, sort search.Sort) ([]model.MemberTeam, error) {
	return s.search(ctx, search.AssembleWithBuilder(cond), sort)
}

func (s *MemberService) search(ctx context.Context, f search.Filter, sort search.Sort) ([]model.MemberTeam, error) {
	if err := sort.Validate(); err != nil {
		return nil, ErrBadRequest(err.Error())
	}

	var res []model.MemberTeam
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.repo.Search(ctx, f, sort)
		return err
	})
	if err != nil {
		return nil, internal("failed to search members", err)
	}
	return res, nil
}

// SearchPage возвращает одну страницу результатов выбранной стратегией.
func (s *MemberService) SearchPage(
	ctx context.Context,
	strategy search.Strategy,
	cond search.SearchCondition,
	req search.PageRequest,
) (search.Page[model.MemberTeam], error) {
	if err := req.Validate(); err != nil {
		return search.Page[model.MemberTeam]{}, ErrBadRequest(err.Error())
	}

	f := search.Assemble(cond)

	var page search.Page[model.MemberTeam]
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.paginator.FetchPage(ctx, strategy, f, req)
		return err
	})
	if err != nil {
		return search.Page[model.MemberTeam]{}, internal("failed to fetch members page", err)
	}
	return page, nil
}

// GetMember возвращает участника по id; команда подгружается только при includeTeam.
func (s *MemberService) GetMember(ctx context.Context, id int64, includeTeam bool) (model.Member, error) {
	if id <= 0 {
		return model.Member{}, ErrBadRequest("member id must be positive")
	}

	var m model.Member
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.repo.FindMember(ctx, id, includeTeam)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return model.Member{}, ErrNotFound("member not found")
		}
		return model.Member{}, internal("failed to get member", err)
	}
	return m, nil
}

// FindByUsername возвращает участников с точным совпадением имени.
func (s *MemberService) FindByUsername(ctx context.Context, username string) ([]model.Member, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrBadRequest("username is required")
	}
	members, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, internal("failed to find members", err)
	}
	return members, nil
}

// FindByTeamName возвращает участников команды по её имени.
func (s *MemberService) FindByTeamName(ctx context.Context, teamName string) ([]model.Member, error) {
	if strings.TrimSpace(teamName) == "" {
		return nil, ErrBadRequest("team_name is required")
	}
	members, err := s.repo.FindByTeamName(ctx, teamName)
	if err != nil {
		return nil, internal("failed to find members", err)
	}
	return members, nil
}

// CreateMember сохраняет нового участника.
func (s *MemberService) CreateMember(ctx context.Context, m model.Member) (model.Member, error) {
	if strings.TrimSpace(m.Username) == "" {
		return model.Member{}, ErrBadRequest("username is required")
	}
	if m.Age < 0 {
		return model.Member{}, ErrBadRequest("age must not be negative")
	}

	created, err := s.repo.CreateMember(ctx, m)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Member{}, ErrNotFound("team not found")
		}
		return model.Member{}, internal("failed to create member", err)
	}
	s.invalidate()
	return created, nil
}

// ChangeTeam переводит участника в другую команду и возвращает его вместе с новой командой.
func (s *MemberService) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (model.Member, error) {
	if memberID <= 0 {
		return model.Member{}, ErrBadRequest("member id must be positive")
	}

	var m model.Member
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.ChangeTeam(ctx, memberID, teamID); err != nil {
			return err
		}
		var err error
		m, err = s.repo.FindMember(ctx, memberID, true)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberNotFound):
			return model.Member{}, ErrNotFound("member not found")
		case errors.Is(err, repository.ErrTeamNotFound):
			return model.Member{}, ErrNotFound("team not found")
		}
		return model.Member{}, internal("failed to change team", err)
	}
	s.invalidate()
	return m, nil
}

func (s *MemberService) invalidate() {
	if s.counts != nil {
		s.counts.Flush()
	}
}
