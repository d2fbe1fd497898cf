// Package postgres implements core.ProfileStore on a Postgres database via
// pgx connection pooling. Scalar writes are COALESCE merges so that an unset
// incoming field never erases a stored value; skills and needs are plain
// append inserts. Every store method runs its statements in one transaction
// and releases the connection on all exit paths.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/questhq/questagent/core"
)

// Schema holds the DDL for the profile tables. It is exported so callers can
// bootstrap a fresh database in development and tests.
const Schema = `
CREATE TABLE IF NOT EXISTS profiles (
    id       TEXT PRIMARY KEY,
    name     TEXT,
    email    TEXT,
    headline TEXT,
    summary  TEXT
);

CREATE TABLE IF NOT EXISTS current_state (
    user_id      TEXT PRIMARY KEY REFERENCES profiles(id),
    role_title   TEXT,
    location     TEXT,
    day_rate     TEXT,
    availability TEXT,
    work_style   TEXT
);

CREATE TABLE IF NOT EXISTS skills (
    id      BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    name    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS needs (
    id      BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    name    TEXT NOT NULL
);
`

// Store is a Postgres-backed core.ProfileStore.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool to the given Postgres URL.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewFromPool wraps an existing pool. The caller retains ownership; Close is
// still safe to call and closes the pool.
func NewFromPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Migrate applies the table DDL. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, Schema)
	return err
}

// withTx runs fn inside one transaction, committing on success and rolling
// back on error or panic.
func (s *Store) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SaveProfile upserts the profile row and the current-state row for the user.
// Empty incoming fields become NULL so the COALESCE keeps whatever the table
// already holds.
func (s *Store) SaveProfile(ctx context.Context, userID string, p core.Profile) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO profiles (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE
			SET name = COALESCE(EXCLUDED.name, profiles.name)`,
			userID, nullify(p.Name))
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO current_state (user_id, role_title, location, day_rate, availability, work_style)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE
			SET role_title   = COALESCE(EXCLUDED.role_title, current_state.role_title),
			    location     = COALESCE(EXCLUDED.location, current_state.location),
			    day_rate     = COALESCE(EXCLUDED.day_rate, current_state.day_rate),
			    availability = COALESCE(EXCLUDED.availability, current_state.availability),
			    work_style   = COALESCE(EXCLUDED.work_style, current_state.work_style)`,
			userID, nullify(p.Role), nullify(p.Location), nullify(p.DayRate),
			nullify(p.Availability), nullify(p.WorkStyle))
		if err != nil {
			return fmt.Errorf("upsert current state: %w", err)
		}
		return nil
	})
}

// AddSkill appends one skill row, creating the parent profile row if needed.
func (s *Store) AddSkill(ctx context.Context, userID, name string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := ensureProfile(ctx, tx, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (user_id, name) VALUES ($1, $2)`, userID, name)
		if err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
		return nil
	})
}

// AddNeed appends one need row, creating the parent profile row if needed.
func (s *Store) AddNeed(ctx context.Context, userID, name string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := ensureProfile(ctx, tx, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO needs (user_id, name) VALUES ($1, $2)`, userID, name)
		if err != nil {
			return fmt.Errorf("insert need: %w", err)
		}
		return nil
	})
}

// LoadProfile reads the scalar fields and the full skill list for the user.
// Returns core.ErrNoProfile when no profile row exists.
func (s *Store) LoadProfile(ctx context.Context, userID string) (core.Profile, error) {
	var p core.Profile
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var name, role, location, dayRate, availability, workStyle *string
		err := tx.QueryRow(ctx, `
			SELECT p.name, cs.role_title, cs.location, cs.day_rate, cs.availability, cs.work_style
			FROM profiles p
			LEFT JOIN current_state cs ON cs.user_id = p.id
			WHERE p.id = $1`,
			userID).Scan(&name, &role, &location, &dayRate, &availability, &workStyle)
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrNoProfile
		}
		if err != nil {
			return fmt.Errorf("select profile: %w", err)
		}
		p.Name = deref(name)
		p.Role = deref(role)
		p.Location = deref(location)
		p.DayRate = deref(dayRate)
		p.Availability = deref(availability)
		p.WorkStyle = deref(workStyle)

		rows, err := tx.Query(ctx,
			`SELECT name FROM skills WHERE user_id = $1 ORDER BY id`, userID)
		if err != nil {
			return fmt.Errorf("select skills: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var skill string
			if err := rows.Scan(&skill); err != nil {
				return fmt.Errorf("scan skill: %w", err)
			}
			p.Skills = append(p.Skills, skill)
		}
		return rows.Err()
	})
	if err != nil {
		return core.Profile{}, err
	}
	return p, nil
}

func ensureProfile(ctx context.Context, tx pgx.Tx, userID string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO profiles (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	return nil
}

// nullify maps the empty string to SQL NULL so COALESCE treats it as unset.
func nullify(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
