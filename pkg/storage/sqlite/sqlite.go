package sqlite

import (
	"database/sql"
	"fmt"

	"context"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
)

type SQLite struct {
	// db is the underlying pool. nil when this store is bound to an open
	// transaction, in which case Transaction calls are reentrant.
	db  *sql.DB
	dbx qrm.DB
}

// New opens a sqlite database at the given path and applies any pending
// migrations
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", filePath))
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; one pooled connection also keeps
	// in-memory databases on the same schema
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &SQLite{db: db, dbx: db}, nil
}

// Transaction runs fn against a store bound to a single transaction
func (s *SQLite) Transaction(ctx context.Context, fn func(storage.Storage) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SQLite{dbx: tx}
	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	log.Debug(stmt.DebugSql())
	return stmt.ExecContext(ctx, s.dbx)
}
