package usecase

import (
	"context"
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

var (
	ErrNoItems         = errors.New("at least one item is required")
	ErrInvalidItem     = errors.New("invalid item")
	ErrInvalidPageSize = errors.New("invalid page size")
)

const draftFileStem = "draft"

// SingleOrderInput is the form payload of the single-order generator.
//
// ShowSKU is optional; when nil the SKU column is shown iff some item has a SKU.
type SingleOrderInput struct {
	Sender    entities.Sender
	Recipient entities.Recipient
	Shipment  entities.Shipment
	Items     []entities.PackingItem
	Notes     string
	PageSize  string
	ShowSKU   *bool
}

type SingleOrderResult struct {
	FileName string
	Content  []byte
}

type ISingleOrderUseCase interface {
	Generate(ctx context.Context, in SingleOrderInput) (SingleOrderResult, error)
}

type SingleOrderUseCase struct {
	renderer interfaces.IDocumentRenderer
	events   IEventLogger
	metrics  interfaces.IGenerationMetrics
	now      func() time.Time
}

var _ ISingleOrderUseCase = (*SingleOrderUseCase)(nil)

func NewSingleOrderUseCase(renderer interfaces.IDocumentRenderer, events IEventLogger, metrics interfaces.IGenerationMetrics) *SingleOrderUseCase {
	if metrics == nil {
		metrics = interfaces.NopGenerationMetrics{}
	}
	return &SingleOrderUseCase{renderer: renderer, events: events, metrics: metrics, now: time.Now}
}

// ParsePageSize accepts "A4" or "LETTER" in any case; empty means A4.
func ParsePageSize(raw string) (entities.PageSize, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return entities.PageSizeA4, nil
	}
	ps := entities.PageSize(raw)
	if !ps.Valid() {
		return "", ErrInvalidPageSize
	}
	return ps, nil
}

// SingleOrderFileName is packing-slip-<order>.pdf, or packing-slip-draft.pdf without an order number.
func SingleOrderFileName(orderNumber string) string {
	stem := strings.TrimSpace(orderNumber)
	if stem == "" {
		stem = draftFileStem
	}
	return fmt.Sprintf("packing-slip-%s.pdf", SanitizeFilename(stem))
}

func (u *SingleOrderUseCase) Generate(ctx context.Context, in SingleOrderInput) (SingleOrderResult, error) {
	doc, err := u.buildDocument(in)
	if err != nil {
		u.metrics.ObserveSingle("invalid")
		return SingleOrderResult{}, err
	}

	started := time.Now()
	pdf, err := u.renderer.Render(ctx, doc)
	u.metrics.ObserveRender(string(entities.ToolModeSingle), time.Since(started), err)
	if err != nil {
		logger.FromContext(ctx).Error("[single][usecase] render failed", zap.Error(err))
		u.metrics.ObserveSingle("render_failed")
		orderID := strings.TrimSpace(doc.Shipment.OrderNumber)
		if orderID == "" {
			orderID = draftFileStem
		}
		return SingleOrderResult{}, &RenderError{OrderID: orderID, Err: err}
	}

	u.events.LogEvent(ctx, entities.EventSingleOrderGenerated, map[string]any{
		PropToolMode: string(entities.ToolModeSingle),
		"item_count": len(doc.Items),
		"page_size":  string(doc.PageSize),
	})
	u.metrics.ObserveSingle("success")

	return SingleOrderResult{
		FileName: SingleOrderFileName(doc.Shipment.OrderNumber),
		Content:  pdf,
	}, nil
}

func (u *SingleOrderUseCase) buildDocument(in SingleOrderInput) (entities.PackingDocument, error) {
	if len(in.Items) == 0 {
		return entities.PackingDocument{}, ErrNoItems
	}
	pageSize, err := ParsePageSize(in.PageSize)
	if err != nil {
		return entities.PackingDocument{}, err
	}

	items := make([]entities.PackingItem, 0, len(in.Items))
	anySKU := false
	for i, it := range in.Items {
		if strings.TrimSpace(it.Description) == "" {
			return entities.PackingDocument{}, fmt.Errorf("%w: item %d has no description", ErrInvalidItem, i+1)
		}
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return entities.PackingDocument{}, fmt.Errorf("%w: item %d has a negative amount", ErrInvalidItem, i+1)
		}
		if it.SKU != "" {
			anySKU = true
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		items = append(items, it)
	}

	showSKU := anySKU
	if in.ShowSKU != nil {
		showSKU = *in.ShowSKU
	}

	shipment := in.Shipment
	if strings.TrimSpace(shipment.Date) == "" {
		shipment.Date = u.now().UTC().Format(DateLayout)
	}

	return entities.PackingDocument{
		Items:     items,
		Sender:    in.Sender,
		Recipient: in.Recipient,
		Shipment:  shipment,
		PageSize:  pageSize,
		ShowSKU:   showSKU,
		Notes:     in.Notes,
	}, nil
}
