package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Direction: направление сортировки.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order: сортировка по одному полю.
type Order struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
	NullsLast bool      `json:"nulls_last,omitempty"`
}

// Sort: упорядоченный список сортировок. Пустой Sort означает порядок по id.
type Sort struct {
	Orders []Order `json:"orders,omitempty"`
}

// By: короткий конструктор сортировки.
func By(orders ...Order) Sort {
	return Sort{Orders: orders}
}

// IsUnsorted: сортировка не задана.
func (s Sort) IsUnsorted() bool {
	return len(s.Orders) == 0
}

var (
	// ErrInvalidPageRequest возвращается для отрицательного номера страницы или неположительного размера.
	ErrInvalidPageRequest = errors.New("invalid page request")
	// ErrInvalidSort возвращается для неизвестного поля или направления сортировки.
	ErrInvalidSort = errors.New("invalid sort")
)

// PageRequest: номер страницы (с нуля), размер страницы и сортировка.
type PageRequest struct {
	Page int  `json:"page"`
	Size int  `json:"size"`
	Sort Sort `json:"sort"`
}

// NewPageRequest проверяет параметры и собирает запрос страницы.
func NewPageRequest(page, size int, sort Sort) (PageRequest, error) {
	req := PageRequest{Page: page, Size: size, Sort: sort}
	if err := req.Validate(); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

func (r PageRequest) Validate() error {
	if r.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidPageRequest)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: size must be positive", ErrInvalidPageRequest)
	}
	// Offset считается в int64 и не должен переполняться.
	if int64(r.Page) > math.MaxInt64/int64(r.Size) {
		return fmt.Errorf("%w: page %d is out of range for size %d", ErrInvalidPageRequest, r.Page, r.Size)
	}
	return r.Sort.Validate()
}

// Validate проверяет поля и направления сортировки.
func (s Sort) Validate() error {
	for _, o := range s.Orders {
		if !sortable(o.Field) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidSort, o.Field)
		}
		if o.Direction != Asc && o.Direction != Desc {
			return fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, o.Direction)
		}
	}
	return nil
}

func sortable(f Field) bool {
	switch f {
	case FieldMemberID, FieldUsername, FieldAge, FieldTeamID, FieldTeamName:
		return true
	}
	return false
}

// Offset: число строк, пропускаемых перед страницей.
func (r PageRequest) Offset() int64 {
	return int64(r.Page) * int64(r.Size)
}

// Window: окно выборки offset + limit.
func (r PageRequest) Window() Window {
	return Window{Offset: r.Offset(), Limit: r.Size}
}

// Window: непрерывный диапазон строк.
type Window struct {
	Offset int64
	Limit  int
}

// Page: содержимое одной страницы и общее число строк.
type Page[T any] struct {
	Content []T
	Total   int64
	Request PageRequest
}

// TotalPages: число страниц при текущем размере.
func (p Page[T]) TotalPages() int64 {
	if p.Request.Size <= 0 {
		return 1
	}
	size := int64(p.Request.Size)
	return (p.Total + size - 1) / size
}

func (p Page[T]) HasNext() bool {
	return int64(p.Request.Page+1) < p.TotalPages()
}

func (p Page[T]) IsFirst() bool {
	return p.Request.Page == 0
}

func (p Page[T]) IsLast() bool {
	return !p.HasNext()
}

type pageJSON[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"total_elements"`
	TotalPages       int64 `json:"total_pages"`
	Page             int   `json:"page"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"number_of_elements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Sort             Sort  `json:"sort"`
}

// MarshalJSON отдаёт страницу вместе с производными полями.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	content := p.Content
	if content == nil {
		content = make([]T, 0)
	}
	return json.Marshal(pageJSON[T]{
		Content:          content,
		TotalElements:    p.Total,
		TotalPages:       p.TotalPages(),
		Page:             p.Request.Page,
		Size:             p.Request.Size,
		NumberOfElements: len(p.Content),
		First:            p.IsFirst(),
		Last:             p.IsLast(),
		Sort:             p.Request.Sort,
	})
}
