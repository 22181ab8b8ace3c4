package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"member-search-service/internal/search"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Fetch(ctx context.Context, f search.Filter, s search.Sort, w search.Window) ([]string, error) {
	args := m.Called(ctx, f, s, w)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockSource) FetchWithTotal(ctx context.Context, f search.Filter, s search.Sort, w search.Window) ([]string, int64, error) {
	args := m.Called(ctx, f, s, w)
	return args.Get(0).([]string), args.Get(1).(int64), args.Error(2)
}

func (m *mockSource) Count(ctx context.Context, f search.Filter, opts search.CountOptions) (int64, error) {
	args := m.Called(ctx, f, opts)
	return args.Get(0).(int64), args.Error(1)
}

type countRecorder struct {
	outcomes []search.CountOutcome
}

func (r *countRecorder) ObserveCount(_ search.Strategy, o search.CountOutcome) {
	r.outcomes = append(r.outcomes, o)
}

func pageReq(t *testing.T, page, size int) search.PageRequest {
	t.Helper()
	req, err := search.NewPageRequest(page, size, search.Sort{})
	require.NoError(t, err)
	return req
}

func TestGetPage_CountDecision(t *testing.T) {
	tests := []struct {
		name        string
		page, size  int
		content     int
		countResult int64
		wantCounted bool
		wantTotal   int64
	}{
		{name: "first page not full", page: 0, size: 5, content: 3, wantTotal: 3},
		{name: "first page empty", page: 0, size: 5, content: 0, wantTotal: 0},
		{name: "first page full", page: 0, size: 2, content: 2, countResult: 6, wantCounted: true, wantTotal: 6},
		{name: "last page remainder", page: 1, size: 5, content: 1, wantTotal: 6},
		{name: "middle page full", page: 1, size: 2, content: 2, countResult: 6, wantCounted: true, wantTotal: 6},
		{name: "page beyond the end", page: 4, size: 5, content: 0, countResult: 6, wantCounted: true, wantTotal: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]string, tt.content)
			calls := 0
			page, counted, err := search.GetPage(context.Background(), content, pageReq(t, tt.page, tt.size),
				func(context.Context) (int64, error) {
					calls++
					return tt.countResult, nil
				})

			require.NoError(t, err)
			assert.Equal(t, tt.wantCounted, counted)
			assert.Equal(t, tt.wantTotal, page.Total)
			if tt.wantCounted {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls)
			}
			assert.LessOrEqual(t, len(page.Content), tt.size)
		})
	}
}

func TestGetPage_TotalNeverBelowReadRows(t *testing.T) {
	page, _, err := search.GetPage(context.Background(), []string{"a", "b"}, pageReq(t, 1, 2),
		func(context.Context) (int64, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
}

func TestPaginator_CountOptimizedSkipsCount(t *testing.T) {
	src := new(mockSource)
	f := search.Filter{}
	req := pageReq(t, 1, 5)

	src.On("Fetch", mock.Anything, f, req.Sort, search.Window{Offset: 5, Limit: 5}).Return([]string{"m6"}, nil)

	rec := &countRecorder{}
	page, err := search.NewPaginator[string](src, rec).FetchPage(context.Background(), search.StrategyCountOptimized, f, req)

	require.NoError(t, err)
	assert.Equal(t, []string{"m6"}, page.Content)
	assert.Equal(t, int64(6), page.Total)
	src.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []search.CountOutcome{search.CountSkipped}, rec.outcomes)
}

func TestPaginator_CountOptimizedRunsCountOnFullPage(t *testing.T) {
	src := new(mockSource)
	f := search.Filter{}
	req := pageReq(t, 0, 2)

	src.On("Fetch", mock.Anything, f, req.Sort, search.Window{Offset: 0, Limit: 2}).Return([]string{"m1", "m2"}, nil)
	src.On("Count", mock.Anything, f, search.CountOptions{JoinTeam: true}).Return(int64(6), nil).Once()

	rec := &countRecorder{}
	page, err := search.NewPaginator[string](src, rec).FetchPage(context.Background(), search.StrategyCountOptimized, f, req)

	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(6), page.Total)
	src.AssertNumberOfCalls(t, "Count", 1)
	assert.Equal(t, []search.CountOutcome{search.CountExecuted}, rec.outcomes)
}

func TestPaginator_ComplexAlwaysCountsAndDropsJoin(t *testing.T) {
	src := new(mockSource)
	f := search.Assemble(search.SearchCondition{Username: "member1"})
	req := pageReq(t, 0, 10)

	src.On("Fetch", mock.Anything, f, req.Sort, req.Window()).Return([]string{"member1"}, nil)
	src.On("Count", mock.Anything, f, search.CountOptions{JoinTeam: false}).Return(int64(1), nil).Once()

	page, err := search.NewPaginator[string](src, nil).FetchPage(context.Background(), search.StrategyComplex, f, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	src.AssertExpectations(t)
}

func TestPaginator_ComplexKeepsJoinForTeamClause(t *testing.T) {
	src := new(mockSource)
	f := search.Assemble(search.SearchCondition{TeamName: "ATEAM"})
	req := pageReq(t, 0, 10)

	src.On("Fetch", mock.Anything, f, req.Sort, req.Window()).Return([]string{}, nil)
	src.On("Count", mock.Anything, f, search.CountOptions{JoinTeam: true}).Return(int64(0), nil).Once()

	_, err := search.NewPaginator[string](src, nil).FetchPage(context.Background(), search.StrategyComplex, f, req)

	require.NoError(t, err)
	src.AssertExpectations(t)
}

func TestPaginator_SimpleUsesCombinedFetch(t *testing.T) {
	src := new(mockSource)
	f := search.Filter{}
	req := pageReq(t, 0, 2)

	src.On("FetchWithTotal", mock.Anything, f, req.Sort, req.Window()).Return([]string{"a", "b"}, int64(6), nil)

	page, err := search.NewPaginator[string](src, nil).FetchPage(context.Background(), search.StrategySimple, f, req)

	require.NoError(t, err)
	assert.Equal(t, int64(6), page.Total)
	src.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	src.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaginator_PropagatesStoreError(t *testing.T) {
	src := new(mockSource)
	storeErr := errors.New("connection reset")
	req := pageReq(t, 0, 2)

	src.On("Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]string{"a", "b"}, nil)
	src.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), storeErr)

	_, err := search.NewPaginator[string](src, nil).FetchPage(context.Background(), search.StrategyCountOptimized, search.Filter{}, req)
	assert.ErrorIs(t, err, storeErr)
}

func TestPaginator_RejectsInvalidRequest(t *testing.T) {
	src := new(mockSource)
	_, err := search.NewPaginator[string](src, nil).FetchPage(context.Background(), search.StrategySimple, search.Filter{},
		search.PageRequest{Page: 0, Size: -1})
	assert.ErrorIs(t, err, search.ErrInvalidPageRequest)
	src.AssertExpectations(t)
}

func TestNewPageRequest_Validation(t *testing.T) {
	_, err := search.NewPageRequest(-1, 10, search.Sort{})
	assert.ErrorIs(t, err, search.ErrInvalidPageRequest)

	_, err = search.NewPageRequest(0, 0, search.Sort{})
	assert.ErrorIs(t, err, search.ErrInvalidPageRequest)

	_, err = search.NewPageRequest(math.MaxInt64/2+1, 2, search.Sort{})
	assert.ErrorIs(t, err, search.ErrInvalidPageRequest)

	req, err := search.NewPageRequest(math.MaxInt64/2, 2, search.Sort{})
	require.NoError(t, err)
	assert.Positive(t, req.Offset())

	_, err = search.NewPageRequest(0, 10, search.By(search.Order{Field: "password", Direction: search.Asc}))
	assert.ErrorIs(t, err, search.ErrInvalidSort)

	_, err = search.NewPageRequest(0, 10, search.By(search.Order{Field: search.FieldAge, Direction: "up"}))
	assert.ErrorIs(t, err, search.ErrInvalidSort)

	req, err = search.NewPageRequest(3, 20, search.By(search.Order{Field: search.FieldTeamName, Direction: search.Desc, NullsLast: true}))
	require.NoError(t, err)
	assert.Equal(t, int64(60), req.Offset())
}

func TestPage_MarshalJSON(t *testing.T) {
	page := search.Page[string]{Total: 6, Request: search.PageRequest{Page: 1, Size: 5}}
	page.Content = []string{"m6"}

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(6), got["total_elements"])
	assert.Equal(t, float64(2), got["total_pages"])
	assert.Equal(t, float64(1), got["number_of_elements"])
	assert.Equal(t, false, got["first"])
	assert.Equal(t, true, got["last"])

	raw, err = json.Marshal(search.Page[string]{Request: search.PageRequest{Size: 5}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"content":[]`)
}
