package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the tables on first start. Statements are
// idempotent so restarting against an existing database is a no-op.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS professors (
			id SERIAL PRIMARY KEY,
			name TEXT UNIQUE,
			department TEXT,
			university TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id SERIAL PRIMARY KEY,
			professor_id INTEGER REFERENCES professors(id),
			name TEXT UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id SERIAL PRIMARY KEY,
			professor_id INTEGER REFERENCES professors(id),
			course_id INTEGER REFERENCES courses(id),
			user_id TEXT,
			rating INTEGER,
			review TEXT,
			course_type TEXT,
			grade TEXT,
			email TEXT,
			date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			user_id TEXT UNIQUE,
			password TEXT,
			email TEXT UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id SERIAL PRIMARY KEY,
			professor_id INTEGER REFERENCES professors(id),
			course_id INTEGER REFERENCES courses(id),
			tag TEXT,
			count INTEGER
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}
