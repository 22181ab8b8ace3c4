package search

import (
	"context"
	"fmt"
)

// Strategy: способ получения общего числа строк для страницы.
type Strategy int

const (
	// StrategySimple: содержимое и total одним совмещённым запросом.
	StrategySimple Strategy = iota
	// StrategyComplex: два независимых запроса; count без лишнего join.
	StrategyComplex
	// StrategyCountOptimized: count выполняется, только если страница заполнена целиком.
	StrategyCountOptimized
)

func (s Strategy) String() string {
	switch s {
	case StrategySimple:
		return "simple"
	case StrategyComplex:
		return "complex"
	case StrategyCountOptimized:
		return "count_optimized"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// CountOptions управляет формой count-запроса.
type CountOptions struct {
	// JoinTeam: присоединять ли таблицу команд.
	JoinTeam bool
}

// Source: хранилище, из которого строится страница.
type Source[T any] interface {
	// Fetch возвращает не более w.Limit строк после w.Offset.
	Fetch(ctx context.Context, f Filter, s Sort, w Window) ([]T, error)
	// FetchWithTotal возвращает окно и общее число строк за один проход.
	FetchWithTotal(ctx context.Context, f Filter, s Sort, w Window) ([]T, int64, error)
	// Count возвращает число строк, подходящих под фильтр.
	Count(ctx context.Context, f Filter, opts CountOptions) (int64, error)
}

// CountOutcome сообщает, был ли выполнен count-запрос.
type CountOutcome int

const (
	CountCombined CountOutcome = iota
	CountExecuted
	CountSkipped
)

// Observer получает результат решения о count-запросе (метрики, логи).
type Observer interface {
	ObserveCount(strategy Strategy, outcome CountOutcome)
}

// Paginator строит страницы поверх Source одним из трёх способов.
type Paginator[T any] struct {
	src      Source[T]
	observer Observer
}

// NewPaginator создаёт Paginator. observer может быть nil.
func NewPaginator[T any](src Source[T], observer Observer) *Paginator[T] {
	return &Paginator[T]{src: src, observer: observer}
}

// FetchPage возвращает страницу req для фильтра f.
func (p *Paginator[T]) FetchPage(ctx context.Context, strategy Strategy, f Filter, req PageRequest) (Page[T], error) {
	if err := req.Validate(); err != nil {
		return Page[T]{}, err
	}

	switch strategy {
	case StrategySimple:
		return p.simple(ctx, f, req)
	case StrategyComplex:
		return p.complex(ctx, f, req)
	case StrategyCountOptimized:
		return p.countOptimized(ctx, f, req)
	}
	return Page[T]{}, fmt.Errorf("unknown paging strategy %d", int(strategy))
}

func (p *Paginator[T]) simple(ctx context.Context, f Filter, req PageRequest) (Page[T], error) {
	content, total, err := p.src.FetchWithTotal(ctx, f, req.Sort, req.Window())
	if err != nil {
		return Page[T]{}, err
	}
	p.observe(StrategySimple, CountCombined)
	return Page[T]{Content: content, Total: atLeast(total, req, len(content)), Request: req}, nil
}

func (p *Paginator[T]) complex(ctx context.Context, f Filter, req PageRequest) (Page[T], error) {
	content, err := p.src.Fetch(ctx, f, req.Sort, req.Window())
	if err != nil {
		return Page[T]{}, err
	}

	// Для many-to-one left join число строк не зависит от join, если фильтр не смотрит на команду.
	total, err := p.src.Count(ctx, f, CountOptions{JoinTeam: f.Uses(Field.TeamField)})
	if err != nil {
		return Page[T]{}, err
	}
	p.observe(StrategyComplex, CountExecuted)
	return Page[T]{Content: content, Total: atLeast(total, req, len(content)), Request: req}, nil
}

func (p *Paginator[T]) countOptimized(ctx context.Context, f Filter, req PageRequest) (Page[T], error) {
	content, err := p.src.Fetch(ctx, f, req.Sort, req.Window())
	if err != nil {
		return Page[T]{}, err
	}

	page, counted, err := GetPage(ctx, content, req, func(ctx context.Context) (int64, error) {
		return p.src.Count(ctx, f, CountOptions{JoinTeam: true})
	})
	if err != nil {
		return Page[T]{}, err
	}
	if counted {
		p.observe(StrategyCountOptimized, CountExecuted)
	} else {
		p.observe(StrategyCountOptimized, CountSkipped)
	}
	return page, nil
}

func (p *Paginator[T]) observe(s Strategy, o CountOutcome) {
	if p.observer != nil {
		p.observer.ObserveCount(s, o)
	}
}

// GetPage собирает страницу из уже полученного содержимого. count вызывается,
// только если total нельзя вывести из самой страницы:
//   - первая страница не заполнена: total = len(content);
//   - непустая не первая страница не заполнена: total = offset + len(content).
//
// Второе значение сообщает, был ли вызван count.
func GetPage[T any](ctx context.Context, content []T, req PageRequest, count func(context.Context) (int64, error)) (Page[T], bool, error) {
	n := len(content)
	offset := req.Offset()

	if offset == 0 {
		if req.Size > n {
			return Page[T]{Content: content, Total: int64(n), Request: req}, false, nil
		}
	} else if n != 0 && req.Size > n {
		return Page[T]{Content: content, Total: offset + int64(n), Request: req}, false, nil
	}

	total, err := count(ctx)
	if err != nil {
		return Page[T]{}, true, err
	}
	return Page[T]{Content: content, Total: atLeast(total, req, n), Request: req}, true, nil
}

// atLeast не даёт total оказаться меньше уже прочитанных строк
// (count и выборка могли увидеть разные состояния хранилища).
func atLeast(total int64, req PageRequest, n int) int64 {
	if n > 0 && total < req.Offset()+int64(n) {
		return req.Offset() + int64(n)
	}
	return total
}
