// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/talentflow/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrSlugTaken  = errors.New("slug already exists")
	errNoDatabase = errors.New("database connection is nil")
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the persistence layer for jobs, candidates, timelines,
// assessments and assessment responses.
type Store struct {
	db      *sql.DB
	q       querier
	tx      *sql.Tx
	dialect string
	now     func() time.Time
}

// Open connects to the database, applies the schema and returns a Store.
func Open(ctx context.Context, dialect, url string) (*Store, error) {
	var dsn string
	switch dialect {
	case DialectSQLite:
		dsn = sqliteDSN(url)
	case DialectPostgres:
		dsn = url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; serialize through one connection.
	if dialect == DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return New(conn, dialect), nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// New wraps an open connection whose schema is already in place.
func New(conn *sql.DB, dialect string) *Store {
	return &Store{
		db:      conn,
		q:       conn,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the configured database type.
func (s *Store) Dialect() string {
	return s.dialect
}

func (s *Store) Close() error {
	if s.db == nil {
		return errNoDatabase
	}
	return s.db.Close()
}

// InTx runs fn against a Store bound to a single transaction. The
// transaction commits if fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	txStore := &Store{db: s.db, q: tx, tx: tx, dialect: s.dialect, now: s.now}
	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}

// Counts returns the number of records in each collection.
func (s *Store) Counts(ctx context.Context) (models.Counts, error) {
	var c models.Counts
	targets := []struct {
		table string
		dst   *int
	}{
		{"job", &c.Jobs},
		{"candidate", &c.Candidates},
		{"candidate_timeline", &c.Timeline},
		{"assessment", &c.Assessments},
		{"assessment_response", &c.Responses},
	}
	for _, t := range targets {
		if err := s.queryRow(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			return c, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}
	return c, nil
}

// Clear removes every record from every collection in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	return s.InTx(ctx, func(tx *Store) error {
		for _, table := range []string{"assessment_response", "assessment", "candidate_timeline", "candidate", "job"} {
			if _, err := tx.exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.q.ExecContext(ctx, s.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.q.QueryContext(ctx, s.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.q.QueryRowContext(ctx, s.rebind(query), args...)
}

// insert runs an INSERT ... RETURNING id and returns the new id.
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := s.queryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// rebind rewrites ? placeholders to $N for postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func encodeList(xs []string) (string, error) {
	if xs == nil {
		xs = []string{}
	}
	b, err := json.Marshal(xs)
	return string(b), err
}

func decodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
