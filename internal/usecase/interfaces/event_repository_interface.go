package interfaces

import (
	"context"
	"packslip/internal/domain/entities"
)

// IEventRepository abstracts persistence of usage events.
//
// The aggregation logic only depends on this interface; the adapters
// (memory, sqlite, postgres, dynamodb) are selected by configuration.
//
//go:generate mockgen -source=event_repository_interface.go -destination=mocks/event_repository_interface_mock.go -package=mock_interfaces

type IEventRepository interface {
	Append(ctx context.Context, e entities.UsageEvent) error
	List(ctx context.Context) ([]entities.UsageEvent, error)
	Count(ctx context.Context) (int, error)
	Name() string
}
