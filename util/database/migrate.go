package database

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaVersion = 1

// applyMigrations brings the schema up to schemaVersion. Versioning lives in a
// single meta row so re-running at startup is cheap and idempotent.
func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create meta table: %w", err)
	}

	var current int
	_ = db.QueryRowContext(ctx,
		`SELECT value::INT FROM meta WHERE key = 'schema_version'`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			isbn             TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			author           TEXT NOT NULL,
			total_copies     INT NOT NULL CHECK (total_copies > 0),
			available_copies INT NOT NULL CHECK (available_copies >= 0),
			price            NUMERIC(12,2) NOT NULL DEFAULT 0,
			CHECK (available_copies <= total_copies)
		)`,
		`CREATE TABLE IF NOT EXISTS members (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			email    TEXT NOT NULL,
			phone    TEXT NOT NULL,
			category TEXT NOT NULL,
			active   BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS member_borrowed_books (
			member_id TEXT NOT NULL REFERENCES members(id),
			isbn      TEXT NOT NULL,
			PRIMARY KEY (member_id, isbn)
		)`,
		`CREATE TABLE IF NOT EXISTS loans (
			id          TEXT PRIMARY KEY,
			member_id   TEXT NOT NULL REFERENCES members(id),
			isbn        TEXT NOT NULL,
			borrowed_at TIMESTAMPTZ NOT NULL,
			due_at      TIMESTAMPTZ NOT NULL,
			returned_at TIMESTAMPTZ,
			returned    BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES ('schema_version', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		fmt.Sprint(schemaVersion)); err != nil {
		return err
	}
	return tx.Commit()
}
