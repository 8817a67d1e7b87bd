package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNotOpen is returned when a Store is used before Open or after Close.
var ErrNotOpen = errors.New("database: store is not open")

// Options selects and locates the backing store.
type Options struct {
	Driver      string // "sqlite" or "postgres"
	Path        string // sqlite file path
	PostgresURI string
}

// Store owns the database handle for the lifetime of the process. Build it once
// with Open and pass it to whatever needs to read or write.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Session is a unit of work bound to one transaction. It is only valid inside
// the callback passed to Store.WithSession.
type Session struct {
	tx      *sql.Tx
	dialect dialect
}

type dialect struct {
	name          string
	numbered      bool // $1, $2 placeholders instead of ?
	schema        []string
	configurePool func(*sql.DB)
}

// Open connects to the configured store and creates any missing tables. It never
// drops or alters existing data.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		db  *sql.DB
		d   dialect
		err error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", "sqlite":
		db, err = openSQLite(opts.Path)
		d = sqliteDialect
	case "postgres":
		db, err = openPostgres(opts.PostgresURI)
		d = postgresDialect
	default:
		return nil, fmt.Errorf("unsupported driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	d.configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", d.name, err)
	}

	s := &Store{db: db, dialect: d}
	if err := s.initTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("driver", d.name).Msg("database ready")
	return s, nil
}

func (s *Store) initTables(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init tables: %w", err)
		}
	}
	return nil
}

// Driver names the backing store, "sqlite" or "postgres".
func (s *Store) Driver() string {
	if s == nil {
		return ""
	}
	return s.dialect.name
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WithSession runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics; a panic is
// re-raised after the rollback.
func (s *Store) WithSession(ctx context.Context, fn func(*Session) error) (err error) {
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("rollback session")
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit session: %w", cErr)
		}
	}()

	return fn(&Session{tx: tx, dialect: s.dialect})
}

// ExecContext runs a statement written with ? placeholders.
func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.tx.ExecContext(ctx, s.dialect.rebind(query), args...)
}

// QueryContext runs a query written with ? placeholders.
func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.tx.QueryContext(ctx, s.dialect.rebind(query), args...)
}

// QueryRowContext runs a single-row query written with ? placeholders.
func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.tx.QueryRowContext(ctx, s.dialect.rebind(query), args...)
}

// rebind rewrites ? placeholders for drivers that number them. Queries must not
// contain a literal question mark; pass such values as arguments.
func (d dialect) rebind(query string) string {
	if !d.numbered || !strings.Contains(query, "?") {
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
