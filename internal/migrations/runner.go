// Package migrations применяет схему БД через goose.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var Postgres embed.FS

func setup() error {
	goose.SetBaseFS(Postgres)
	return goose.SetDialect("postgres")
}

// OpenDB открывает database/sql поверх пула pgx для goose.
func OpenDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

// Up применяет все непримененные миграции.
func Up(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.Up(db, "postgres")
}

// Down откатывает одну миграцию.
func Down(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.Down(db, "postgres")
}

// Status печатает состояние миграций.
func Status(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.Status(db, "postgres")
}
