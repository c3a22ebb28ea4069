package repository

import (
	"context"
	"database/sql"
	"fmt"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS usage_events (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	ts TEXT NOT NULL,
	event_name TEXT NOT NULL,
	tool_mode TEXT NOT NULL DEFAULT 'unknown',
	landing_context TEXT NOT NULL DEFAULT 'unknown',
	properties TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_usage_events_name_ts ON usage_events(event_name, ts);
`

// EventSQLiteRepository stores events in an embedded SQLite file.
// Like the memory store it keeps at most max events, evicting by insertion order.
type EventSQLiteRepository struct {
	db  *sql.DB
	max int
}

var _ interfaces.IEventRepository = (*EventSQLiteRepository)(nil)

// NewEventSQLiteRepository creates the table if needed.
func NewEventSQLiteRepository(ctx context.Context, db *sql.DB, maxEvents int) (*EventSQLiteRepository, error) {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return &EventSQLiteRepository{db: db, max: maxEvents}, nil
}

func (r *EventSQLiteRepository) Append(ctx context.Context, e entities.UsageEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO `+eventsTableName+` (id, ts, event_name, tool_mode, landing_context, properties) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, formatTimestamp(e.Timestamp), string(e.EventName), string(e.ToolMode), string(e.LandingContext), e.Properties,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM `+eventsTableName+` WHERE seq NOT IN (SELECT seq FROM `+eventsTableName+` ORDER BY seq DESC LIMIT ?)`,
		r.max,
	)
	if err != nil {
		return fmt.Errorf("evict events: %w", err)
	}
	return tx.Commit()
}

func (r *EventSQLiteRepository) List(ctx context.Context) ([]entities.UsageEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ts, event_name, tool_mode, landing_context, properties FROM `+eventsTableName+` ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventSQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+eventsTableName).Scan(&n)
	return n, err
}

func (r *EventSQLiteRepository) Name() string { return "sqlite" }
