package repository

import (
	"context"
	"fmt"
	"packslip/internal/config"
	"packslip/internal/infrastructure/database"
	"packslip/internal/usecase/interfaces"
	"packslip/pkg/logger"

	"go.uber.org/zap"
)

func noopClose() error { return nil }

// OpenEventRepository builds the event store selected by cfg.EventStore.Backend.
// The returned func releases the underlying connection.
func OpenEventRepository(ctx context.Context, cfg *config.Config) (interfaces.IEventRepository, func() error, error) {
	store := cfg.EventStore

	switch store.Backend {
	case config.BackendMemory, "":
		return NewEventMemoryRepository(store.MaxEvents), noopClose, nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := NewEventSQLiteRepository(ctx, db, store.MaxEvents)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case config.BackendPostgres:
		db, err := database.OpenPostgres(ctx, store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo, err := NewEventPostgresRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, nil, err
		}
		repo := NewEventDynamoRepository(ddb, store.Table)
		if err := repo.EnsureTable(ctx); err != nil {
			return nil, nil, err
		}
		return repo, noopClose, nil
	}

	return nil, nil, fmt.Errorf("unsupported event store backend %q", store.Backend)
}

// OpenEventRepositoryWithFallback falls back to the in-memory store when the
// configured backend can't be reached, so event logging never blocks startup.
func OpenEventRepositoryWithFallback(ctx context.Context, cfg *config.Config) (interfaces.IEventRepository, func() error) {
	repo, closeFn, err := OpenEventRepository(ctx, cfg)
	if err == nil {
		logger.L().Info("[events][repository] event store ready", zap.String("backend", repo.Name()))
		return repo, closeFn
	}

	logger.L().Warn("[events][repository] event store unavailable, using memory",
		zap.String("backend", cfg.EventStore.Backend),
		zap.Error(err),
	)
	return NewEventMemoryRepository(cfg.EventStore.MaxEvents), noopClose
}
