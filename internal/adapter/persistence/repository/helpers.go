package repository

import (
	"database/sql"
	"packslip/internal/domain/entities"
	"time"
)

const eventsTableName = "usage_events"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t.UTC()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent reads id, ts, event_name, tool_mode, landing_context, properties.
// ts comes back as TEXT from sqlite and as a timestamp from postgres.
func scanEvent(row rowScanner) (entities.UsageEvent, error) {
	var (
		e    entities.UsageEvent
		ts   any
		name string
		mode string
		lc   string
	)
	if err := row.Scan(&e.ID, &ts, &name, &mode, &lc, &e.Properties); err != nil {
		return entities.UsageEvent{}, err
	}
	e.Timestamp = scanTimestamp(ts)
	e.EventName = entities.EventName(name)
	e.ToolMode = entities.ToolMode(mode)
	e.LandingContext = entities.LandingContext(lc)
	return e, nil
}

func collectEvents(rows *sql.Rows) ([]entities.UsageEvent, error) {
	defer rows.Close()

	var out []entities.UsageEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanTimestamp(raw any) time.Time {
	switch v := raw.(type) {
	case string:
		return parseTimestamp(v)
	case []byte:
		return parseTimestamp(string(v))
	case time.Time:
		return v.UTC()
	}
	return time.Time{}
}
