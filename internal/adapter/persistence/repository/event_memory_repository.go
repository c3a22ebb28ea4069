package repository

import (
	"context"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"sync"
)

// DefaultMaxEvents is the soft cap of the bounded stores.
const DefaultMaxEvents = 1000

// EventMemoryRepository keeps the most recent events in process memory.
// Appends are serialized; once the cap is reached the oldest event is evicted.
type EventMemoryRepository struct {
	mu     sync.Mutex
	events []entities.UsageEvent
	max    int
}

var _ interfaces.IEventRepository = (*EventMemoryRepository)(nil)

func NewEventMemoryRepository(maxEvents int) *EventMemoryRepository {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &EventMemoryRepository{max: maxEvents}
}

func (r *EventMemoryRepository) Append(_ context.Context, e entities.UsageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	if over := len(r.events) - r.max; over > 0 {
		// Copy down so the backing array does not keep evicted events alive.
		n := copy(r.events, r.events[over:])
		clear(r.events[n:])
		r.events = r.events[:n]
	}
	return nil
}

func (r *EventMemoryRepository) List(_ context.Context) ([]entities.UsageEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.UsageEvent, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *EventMemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events), nil
}

func (r *EventMemoryRepository) Name() string { return "In-Memory (Ephemeral)" }
