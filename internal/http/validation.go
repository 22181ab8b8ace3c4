package http

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"member-search-service/internal/search"
	"member-search-service/internal/service"
)

// Search

// ParseCondition собирает условие поиска из query-параметров
// username, team_name, age_goe, age_loe. Пустой параметр считается незаданным.
func ParseCondition(q url.Values) (search.SearchCondition, error) {
	cond := search.SearchCondition{
		Username: q.Get("username"),
		TeamName: q.Get("team_name"),
	}

	var err error
	if cond.AgeGoe, err = optionalInt(q, "age_goe", ageBits); err != nil {
		return search.SearchCondition{}, err
	}
	if cond.AgeLoe, err = optionalInt(q, "age_loe", ageBits); err != nil {
		return search.SearchCondition{}, err
	}
	return cond, nil
}

// ageBits: колонка age в PostgreSQL имеет тип INT (int4).
const ageBits = 32

// optionalInt читает целое, помещающееся в bits бит; bits == 0 означает размер int.
func optionalInt(q url.Values, name string, bits int) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, service.ErrBadRequest(fmt.Sprintf("%s is out of range", name))
		}
		return nil, service.ErrBadRequest(fmt.Sprintf("%s must be an integer", name))
	}
	v := int(parsed)
	return &v, nil
}

// ParseSort разбирает повторяемый параметр sort=field[,asc|desc][,nullslast].
func ParseSort(values []string) (search.Sort, error) {
	var sort search.Sort
	for _, v := range values {
		parts := strings.Split(v, ",")
		o := search.Order{
			Field:     search.Field(strings.TrimSpace(parts[0])),
			Direction: search.Asc,
		}
		if o.Field == "" {
			return search.Sort{}, service.ErrBadRequest("sort field is required")
		}
		for _, p := range parts[1:] {
			switch strings.ToLower(strings.TrimSpace(p)) {
			case "asc":
				o.Direction = search.Asc
			case "desc":
				o.Direction = search.Desc
			case "nullslast":
				o.NullsLast = true
			default:
				return search.Sort{}, service.ErrBadRequest(fmt.Sprintf("unknown sort option %q", p))
			}
		}
		sort.Orders = append(sort.Orders, o)
	}

	if err := sort.Validate(); err != nil {
		return search.Sort{}, service.ErrBadRequest(err.Error())
	}
	return sort, nil
}

// ParsePageRequest читает page (с нуля), size и sort. Размер больше maxSize урезается до maxSize.
func ParsePageRequest(q url.Values, defaultSize, maxSize int) (search.PageRequest, error) {
	page, err := intOrDefault(q, "page", 0)
	if err != nil {
		return search.PageRequest{}, err
	}
	size, err := intOrDefault(q, "size", defaultSize)
	if err != nil {
		return search.PageRequest{}, err
	}
	if size > maxSize {
		size = maxSize
	}

	sort, err := ParseSort(q["sort"])
	if err != nil {
		return search.PageRequest{}, err
	}

	req, err := search.NewPageRequest(page, size, sort)
	if err != nil {
		return search.PageRequest{}, service.ErrBadRequest(err.Error())
	}
	return req, nil
}

func intOrDefault(q url.Values, name string, def int) (int, error) {
	v, err := optionalInt(q, name, 0)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

// Members

// ParseMemberID Валидация path-параметра id
func ParseMemberID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrBadRequest("member id must be a positive integer")
	}
	return id, nil
}

// ValidateCreateMemberRequest POST /members — тело запроса
func ValidateCreateMemberRequest(req createMemberRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return service.ErrBadRequest("username is required")
	}
	if req.Age < 0 {
		return service.ErrBadRequest("age must not be negative")
	}
	if req.Age > math.MaxInt32 {
		return service.ErrBadRequest("age is out of range")
	}
	if req.TeamID != nil && *req.TeamID <= 0 {
		return service.ErrBadRequest("team_id must be positive")
	}
	return nil
}

// Teams

// ValidateTeamName Валидация имени команды из тела или пути
func ValidateTeamName(teamName string) error {
	if strings.TrimSpace(teamName) == "" {
		return service.ErrBadRequest("team_name is required")
	}
	return nil
}
