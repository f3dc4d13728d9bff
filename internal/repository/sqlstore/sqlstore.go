// Package sqlstore implements the repositories on database/sql.
//
// Queries use `$n` placeholders and RETURNING, which both the pgx driver
// (PostgreSQL) and modernc.org/sqlite accept, so one implementation serves both.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fileuploader/internal/repository"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories bundles the three SQL repositories sharing one connection pool.
type Repositories struct {
	Cars      *CarSQL
	Documents *DocumentSQL
	Contents  *ContentSQL
}

// New builds all repositories on db.
func New(db *sql.DB) *Repositories {
	return &Repositories{
		Cars:      NewCarSQL(db),
		Documents: NewDocumentSQL(db),
		Contents:  NewContentSQL(db),
	}
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%v; rollback failed: %w", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func exists(ctx context.Context, db DBTX, query string, id int64) (bool, error) {
	var ok bool
	if err := db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func deleteByID(ctx context.Context, db DBTX, query string, id int64) error {
	// Missing rows are not an error; deletion is unconditional.
	_, err := db.ExecContext(ctx, query, id)
	return err
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// detachContent clears content_id on every document other than keepDocID that
// holds contentID. keepDocID may be zero when no document should be kept.
func detachContent(ctx context.Context, db DBTX, contentID, keepDocID int64) error {
	const q = `UPDATE documents SET content_id = NULL WHERE content_id = $1 AND id <> $2`
	if _, err := db.ExecContext(ctx, q, contentID, keepDocID); err != nil {
		return fmt.Errorf("detach content %d: %w", contentID, err)
	}
	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullID(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}
