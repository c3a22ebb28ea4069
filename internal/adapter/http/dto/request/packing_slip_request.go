package request

import (
	"packslip/internal/domain/entities"
	"packslip/internal/usecase"
	"strings"
)

type SenderRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type RecipientRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type ShipmentRequest struct {
	Date           string `json:"date"`
	OrderNumber    string `json:"order_number"`
	PONumber       string `json:"po_number"`
	Carrier        string `json:"carrier"`
	ShippingMethod string `json:"shipping_method"`
	TrackingNumber string `json:"tracking_number"`
	Weight         string `json:"weight"`
}

type ItemRequest struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// SingleOrderRequest is the JSON form posted by the single-order generator.
type SingleOrderRequest struct {
	Sender    SenderRequest    `json:"sender"`
	Recipient RecipientRequest `json:"recipient"`
	Shipment  ShipmentRequest  `json:"shipment"`
	Items     []ItemRequest    `json:"items"`
	Notes     string           `json:"notes"`
	PageSize  string           `json:"page_size"`
	ShowSKU   *bool            `json:"show_sku"`
}

func (r SingleOrderRequest) ToInput() usecase.SingleOrderInput {
	items := make([]entities.PackingItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PackingItem{
			ID:          it.ID,
			SKU:         strings.TrimSpace(it.SKU),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return usecase.SingleOrderInput{
		Sender:    entities.Sender(r.Sender),
		Recipient: entities.Recipient(r.Recipient),
		Shipment:  entities.Shipment(r.Shipment),
		Items:     items,
		Notes:     r.Notes,
		PageSize:  r.PageSize,
		ShowSKU:   r.ShowSKU,
	}
}
