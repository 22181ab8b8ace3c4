package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"member-search-service/internal/metrics"
	"member-search-service/internal/model"
	"member-search-service/internal/search"
	"member-search-service/internal/service"
)

// MemberService: операции над участниками, которые нужны обработчикам.
type MemberService interface {
	Search(ctx context.Context, cond search.SearchCondition, sort search.Sort) ([]model.MemberTeam, error)
	SearchByBuilder(ctx context.Context, cond search.SearchCondition, sort search.Sort) ([]model.MemberTeam, error)
	SearchPage(ctx context.Context, strategy search.Strategy, cond search.SearchCondition, req search.PageRequest) (search.Page[model.MemberTeam], error)
	GetMember(ctx context.Context, id int64, includeTeam bool) (model.Member, error)
	FindByUsername(ctx context.Context, username string) ([]model.Member, error)
	FindByTeamName(ctx context.Context, teamName string) ([]model.Member, error)
	CreateMember(ctx context.Context, m model.Member) (model.Member, error)
	ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (model.Member, error)
}

// TeamService: операции над командами, которые нужны обработчикам.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeam(ctx context.Context, name string) (service.TeamWithMembers, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
}

// Options: необязательные настройки обработчика.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	// Metrics включает /metrics и HTTP-метрики, если не nil.
	Metrics *metrics.Metrics
	// Ping проверяет хранилище для /health, если не nil.
	Ping func(ctx context.Context) error
}

const (
	defaultPageSize = 20
	maxPageSize     = 2000
)

type Handler struct {
	Members MemberService
	Teams   TeamService
	Log     *slog.Logger
	opts    Options
}

func NewHandler(members MemberService, teams TeamService, log *slog.Logger, opts Options) *Handler {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = defaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = maxPageSize
	}
	return &Handler{
		Members: members,
		Teams:   teams,
		Log:     log,
		opts:    opts,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(h.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	if h.opts.Metrics != nil {
		r.Use(h.opts.Metrics.Middleware)
		r.Handle("/metrics", h.opts.Metrics.Handler())
	}

	r.Get("/health", h.handleHealth)

	r.Get("/v1/members", h.handleMembersSearch)
	r.Get("/v1/members/builder", h.handleMembersSearchBuilder)
	r.Get("/v2/members", h.handleMembersPage(search.StrategySimple))
	r.Get("/v3/members", h.handleMembersPage(search.StrategyComplex))
	r.Get("/v4/members", h.handleMembersPage(search.StrategyCountOptimized))

	r.Route("/members", func(r chi.Router) {
		r.Get("/", h.handleMembersByUsername)
		r.Post("/", h.handleMemberCreate)
		r.Get("/{id}", h.handleMemberGet)
		r.Post("/{id}/team", h.handleMemberChangeTeam)
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.handleTeamList)
		r.Post("/", h.handleTeamAdd)
		r.Get("/{name}", h.handleTeamGet)
		r.Get("/{name}/members", h.handleTeamMembers)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.opts.Ping(ctx); err != nil {
			h.Log.Error("health check failed", slog.Any("err", err))
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
