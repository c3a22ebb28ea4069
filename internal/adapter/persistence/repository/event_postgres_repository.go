package repository

import (
	"context"
	"database/sql"
	"fmt"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS usage_events (
	seq BIGSERIAL PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	ts TIMESTAMPTZ NOT NULL,
	event_name TEXT NOT NULL,
	tool_mode TEXT NOT NULL DEFAULT 'unknown',
	landing_context TEXT NOT NULL DEFAULT 'unknown',
	properties TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_usage_events_name_ts ON usage_events (event_name, ts);
`

// EventPostgresRepository stores events in PostgreSQL through the pgx stdlib driver.
// It is unbounded.
type EventPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IEventRepository = (*EventPostgresRepository)(nil)

// NewEventPostgresRepository creates the table if needed.
func NewEventPostgresRepository(ctx context.Context, db *sql.DB) (*EventPostgresRepository, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("create postgres schema: %w", err)
	}
	return &EventPostgresRepository{db: db}, nil
}

func (r *EventPostgresRepository) Append(ctx context.Context, e entities.UsageEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO `+eventsTableName+` (id, ts, event_name, tool_mode, landing_context, properties) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Timestamp.UTC(), string(e.EventName), string(e.ToolMode), string(e.LandingContext), e.Properties,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventPostgresRepository) List(ctx context.Context) ([]entities.UsageEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ts, event_name, tool_mode, landing_context, properties FROM `+eventsTableName+` ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventPostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+eventsTableName).Scan(&n)
	return n, err
}

func (r *EventPostgresRepository) Name() string { return "postgres" }
