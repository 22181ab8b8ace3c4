package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"member-search-service/internal/config"
	"member-search-service/internal/memstore"
	"member-search-service/internal/migrations"
	"member-search-service/internal/repository"
	"member-search-service/internal/seed"
	"member-search-service/internal/service"
)

// backend: хранилище, выбранное через database.driver.
type backend struct {
	members service.MemberRepository
	teams   service.TeamRepository
	bulk    seed.MemberCreator
	tx      service.TransactionManager
	ping    func(ctx context.Context) error
	close   func()

	// db не nil только для postgres.
	db *repository.Postgres
}

var errMemoryMigrate = errors.New("migrations apply only to database.driver=postgres")

func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	if cfg.DB.Driver == config.DriverMemory {
		store := memstore.New()
		log.Info("using in-memory store")
		return &backend{
			members: store,
			teams:   store,
			bulk:    store,
			tx:      store,
			close:   func() {},
		}, nil
	}

	db, err := repository.NewPostgres(ctx, cfg.DB.DSN, repository.PoolOptions{
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Pool.Close()
		return nil, fmt.Errorf("postgres unavailable: %w", err)
	}
	log.Info("connected to postgres", slog.Int("max_conns", int(cfg.DB.MaxConns)))

	memberRepo := repository.NewMemberRepo(db)
	return &backend{
		members: memberRepo,
		teams:   repository.NewTeamRepo(db),
		bulk:    memberRepo,
		tx:      repository.NewTransactionManager(db),
		ping:    db.Ping,
		close:   db.Pool.Close,
		db:      db,
	}, nil
}

// migrateUp применяет миграции; для memory ничего не делает.
func (b *backend) migrateUp(log *slog.Logger) error {
	if b.db == nil {
		return nil
	}
	sqlDB := migrations.OpenDB(b.db.Pool)
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	log.Info("migrations applied")
	return nil
}

func (b *backend) seeder(log *slog.Logger) *seed.Seeder {
	return seed.New(b.teams, b.bulk, b.tx, log)
}
