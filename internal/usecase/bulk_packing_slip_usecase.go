package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"packslip/pkg/logger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrRender = errors.New("failed to render packing slip")

// RenderError aborts a whole job: no archive is produced once a group fails.
type RenderError struct {
	OrderID string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("Failed to render packing slip for order %s: %v", e.OrderID, e.Err)
}

func (e *RenderError) Unwrap() []error { return []error{ErrRender, e.Err} }

type BulkOptions struct {
	PageSize entities.PageSize
}

type BulkResult struct {
	JobID       string
	Archive     []byte
	FileName    string
	ArchiveURL  string
	OrdersCount int
	RowsCount   int
	Files       []string
}

// OrderSummary describes one group of an inspected upload.
type OrderSummary struct {
	OrderID  string `json:"order_id"`
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
}

type BulkInspection struct {
	Headers   []string       `json:"headers"`
	RowsCount int            `json:"rows_count"`
	Orders    []OrderSummary `json:"orders"`
}

// IBulkPackingSlipUseCase turns one CSV upload into a ZIP of packing slips.
type IBulkPackingSlipUseCase interface {
	Generate(ctx context.Context, r io.Reader, opts BulkOptions) (BulkResult, error)
	Inspect(ctx context.Context, r io.Reader) (BulkInspection, error)
}

type BulkPackingSlipUseCase struct {
	renderer interfaces.IDocumentRenderer
	events   IEventLogger
	store    interfaces.IArchiveStore
	metrics  interfaces.IGenerationMetrics
	now      func() time.Time
	newJobID func() string
}

var _ IBulkPackingSlipUseCase = (*BulkPackingSlipUseCase)(nil)

// NewBulkPackingSlipUseCase wires the job pipeline. store and metrics are optional.
func NewBulkPackingSlipUseCase(
	renderer interfaces.IDocumentRenderer,
	events IEventLogger,
	store interfaces.IArchiveStore,
	metrics interfaces.IGenerationMetrics,
) *BulkPackingSlipUseCase {
	if metrics == nil {
		metrics = interfaces.NopGenerationMetrics{}
	}
	return &BulkPackingSlipUseCase{
		renderer: renderer,
		events:   events,
		store:    store,
		metrics:  metrics,
		now:      time.Now,
		newJobID: uuid.NewString,
	}
}

func (u *BulkPackingSlipUseCase) Generate(ctx context.Context, r io.Reader, opts BulkOptions) (BulkResult, error) {
	started := u.now()
	jobID := u.newJobID()
	log := logger.FromContext(ctx).With(zap.String("job_id", jobID))

	pageSize := opts.PageSize
	if pageSize == "" {
		pageSize = entities.PageSizeA4
	}
	if !pageSize.Valid() {
		return BulkResult{}, ErrInvalidPageSize
	}

	parsed, err := ParseUploadRows(r)
	if err != nil {
		var limitErr *RowLimitError
		if errors.As(err, &limitErr) {
			u.events.LogEvent(ctx, entities.EventBulkLimitHit, map[string]any{
				PropToolMode:  string(entities.ToolModeBulk),
				PropRowsCount: limitErr.Rows,
			})
		}
		log.Info("[bulk][usecase] upload rejected", zap.Error(err))
		u.metrics.ObserveBulkJob("rejected", 0, time.Since(started))
		return BulkResult{}, err
	}

	groups := GroupByOrder(parsed.Rows)
	today := started.UTC().Format(DateLayout)
	alloc := NewFilenameAllocator()

	// Groups are rendered one at a time, in first-seen order. Only one PDF is
	// being produced at any moment so peak memory stays bounded by the largest
	// document plus the finished buffers. Do not fan this loop out.
	files := make([]entities.RenderedFile, 0, len(groups))
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			u.metrics.ObserveBulkJob("canceled", len(groups), time.Since(started))
			return BulkResult{}, err
		}

		doc := BuildPackingDocument(g, pageSize, today)
		renderStart := time.Now()
		pdf, err := u.renderer.Render(ctx, doc)
		u.metrics.ObserveRender(string(entities.ToolModeBulk), time.Since(renderStart), err)
		if err != nil {
			log.Error("[bulk][usecase] render failed", zap.String("order_id", g.OrderID), zap.Error(err))
			u.metrics.ObserveBulkJob("render_failed", len(groups), time.Since(started))
			return BulkResult{}, &RenderError{OrderID: g.OrderID, Err: err}
		}

		files = append(files, entities.RenderedFile{
			Name:    alloc.Next(ArchiveBaseName(g)) + ".pdf",
			OrderID: g.OrderID,
			Content: pdf,
		})
	}

	archive, err := PackageArchive(files, started)
	if err != nil {
		log.Error("[bulk][usecase] packaging failed", zap.Error(err))
		u.metrics.ObserveBulkJob("packaging_failed", len(groups), time.Since(started))
		return BulkResult{}, err
	}

	result := BulkResult{
		JobID:       jobID,
		Archive:     archive,
		FileName:    ArchiveFileName,
		OrdersCount: len(groups),
		RowsCount:   len(parsed.Rows),
		Files:       make([]string, 0, len(files)),
	}
	for _, f := range files {
		result.Files = append(result.Files, f.Name)
	}

	if u.store != nil {
		key := fmt.Sprintf("bulk/%s/%s", jobID, ArchiveFileName)
		url, err := u.store.Save(ctx, key, archive)
		if err != nil {
			log.Warn("[bulk][usecase] archive retention failed", zap.String("key", key), zap.Error(err))
		} else {
			result.ArchiveURL = url
		}
	}

	u.events.LogEvent(ctx, entities.EventBulkGenerateSuccess, map[string]any{
		PropToolMode:    string(entities.ToolModeBulk),
		PropOrdersCount: result.OrdersCount,
		PropRowsCount:   result.RowsCount,
	})
	u.metrics.ObserveBulkJob("success", result.OrdersCount, time.Since(started))

	log.Info("[bulk][usecase] job finished",
		zap.Int("orders", result.OrdersCount),
		zap.Int("rows", result.RowsCount),
		zap.Int("archive_bytes", len(archive)),
	)
	return result, nil
}

// Inspect parses and groups an upload without rendering anything.
func (u *BulkPackingSlipUseCase) Inspect(_ context.Context, r io.Reader) (BulkInspection, error) {
	parsed, err := ParseUploadRows(r)
	if err != nil {
		return BulkInspection{}, err
	}

	groups := GroupByOrder(parsed.Rows)
	alloc := NewFilenameAllocator()
	out := BulkInspection{
		Headers:   parsed.Headers,
		RowsCount: len(parsed.Rows),
		Orders:    make([]OrderSummary, 0, len(groups)),
	}
	for _, g := range groups {
		out.Orders = append(out.Orders, OrderSummary{
			OrderID:  g.OrderID,
			FileName: alloc.Next(ArchiveBaseName(g)) + ".pdf",
			Rows:     len(g.Rows),
		})
	}
	return out, nil
}
