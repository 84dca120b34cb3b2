// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"assessment-workers/internal/common/config"

	_ "github.com/lib/pq"
)

// PostgresClient wraps the SQL database connection
type PostgresClient struct {
	DB *sql.DB
}

// NewPostgres creates a new PostgreSQL client
func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

// Ping tests the database connection
func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close closes the database connection
func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// schemaStatements create the tables the workers read and write. Each is
// idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assessment_submissions (
		id              TEXT PRIMARY KEY,
		person_id       TEXT NOT NULL,
		assessment_type TEXT NOT NULL,
		responses       JSONB NOT NULL,
		submitted_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS person_assessment_results (
		id                TEXT PRIMARY KEY,
		person_id         TEXT NOT NULL,
		assessment_id     TEXT,
		assessment_type   TEXT NOT NULL,
		raw_responses     JSONB NOT NULL,
		calculated_scores JSONB NOT NULL,
		confidence_level  DOUBLE PRECISION,
		scoring_version   TEXT NOT NULL,
		completed_at      TIMESTAMPTZ NOT NULL,
		expires_at        TIMESTAMPTZ,
		notes             TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_person_assessment_results_latest
		ON person_assessment_results (person_id, assessment_type, completed_at DESC)`,
}

// Migrate applies the schema inside one transaction.
func (c *PostgresClient) Migrate(ctx context.Context) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
