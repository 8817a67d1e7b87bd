package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

var postgresDialect = dialect{
	name:     "postgres",
	numbered: true,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT,
			email TEXT,
			skill_level TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			username TEXT,
			content TEXT,
			likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS chats (
			id BIGSERIAL PRIMARY KEY,
			name TEXT,
			last_message TEXT,
			"timestamp" TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	},
	configurePool: func(db *sql.DB) {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	},
}

func openPostgres(uri string) (*sql.DB, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("postgres uri is required")
	}
	db, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	return db, nil
}
