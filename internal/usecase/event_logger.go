package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"packslip/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PropToolMode       = "tool_mode"
	PropLandingContext = "landing_context"
)

var ErrInvalidEvent = errors.New("invalid event name")

// ValidateEventName is the ingestion boundary check: the name must be present
// and allow-listed. Legacy aliases are accepted as sent.
func ValidateEventName(raw string) (entities.EventName, error) {
	name := entities.EventName(strings.TrimSpace(raw))
	if name == "" || !name.Allowed() {
		return "", ErrInvalidEvent
	}
	return name, nil
}

// IEventLogger records usage events. LogEvent never fails from the caller's
// point of view: storage errors are logged and dropped.
type IEventLogger interface {
	LogEvent(ctx context.Context, name entities.EventName, props map[string]any)
}

type EventLogger struct {
	repo  interfaces.IEventRepository
	now   func() time.Time
	newID func() string
}

var _ IEventLogger = (*EventLogger)(nil)

func NewEventLogger(repo interfaces.IEventRepository) *EventLogger {
	return &EventLogger{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (l *EventLogger) LogEvent(ctx context.Context, name entities.EventName, props map[string]any) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error("[events][usecase] recovered while logging event",
				zap.String("event_name", string(name)),
				zap.Any("panic", r),
			)
		}
	}()

	if !name.Allowed() {
		log.Warn("[events][usecase] dropping event outside allow-list", zap.String("event_name", string(name)))
		return
	}

	event, err := l.buildEvent(name, props)
	if err != nil {
		log.Error("[events][usecase] failed to build event", zap.String("event_name", string(name)), zap.Error(err))
		return
	}

	if err := l.repo.Append(ctx, event); err != nil {
		log.Error("[events][usecase] failed to persist event",
			zap.String("event_name", string(event.EventName)),
			zap.String("backend", l.repo.Name()),
			zap.Error(err),
		)
		return
	}
	log.Debug("[events][usecase] event stored",
		zap.String("event_name", string(event.EventName)),
		zap.String("event_id", event.ID),
	)
}

func (l *EventLogger) buildEvent(name entities.EventName, props map[string]any) (entities.UsageEvent, error) {
	rest := make(map[string]any, len(props))
	toolMode := entities.ToolModeUnknown
	landing := entities.LandingUnknown

	for k, v := range props {
		switch k {
		case PropToolMode:
			toolMode = entities.ParseToolMode(stringValue(v))
		case PropLandingContext:
			landing = entities.ParseLandingContext(stringValue(v))
		default:
			rest[k] = v
		}
	}

	raw, err := json.Marshal(rest)
	if err != nil {
		return entities.UsageEvent{}, fmt.Errorf("marshal properties: %w", err)
	}

	return entities.UsageEvent{
		ID:             l.newID(),
		Timestamp:      l.now().UTC(),
		EventName:      name.Canonical(),
		ToolMode:       toolMode,
		LandingContext: landing,
		Properties:     string(raw),
	}, nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
