package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"member-search-service/internal/cache"
	httpapi "member-search-service/internal/http"
	"member-search-service/internal/metrics"
	"member-search-service/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer b.close()

	if err := b.migrateUp(logger); err != nil {
		return err
	}

	if cfg.IsLocal() {
		if err := b.seeder(logger).RunOnce(ctx, cfg.Seed.Members); err != nil {
			return err
		}
	}

	m := metrics.New()

	var counts *cache.CountCache
	if cfg.Search.CountCacheTTL > 0 {
		counts = cache.NewCountCache(cfg.Search.CountCacheTTL, "members")
	}

	memberService := service.NewMemberService(b.members, b.tx, m, counts)
	teamService := service.NewTeamService(b.teams, b.members, b.tx)

	handler := httpapi.NewHandler(memberService, teamService, logger, httpapi.Options{
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
		Metrics:         m,
		Ping:            b.ping,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("profile", cfg.Profile),
			slog.String("driver", cfg.DB.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("err", err))
			return err
		}
	}

	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
