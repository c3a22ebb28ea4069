package usecase

import (
	"packslip/internal/domain/entities"
	"strings"

	"github.com/google/uuid"
)

// DateLayout is the format used for shipment dates on the document.
const DateLayout = "2006-01-02"

// BuildPackingDocument maps one order group onto the document model.
//
// The first row of the group supplies sender, recipient and shipment blocks;
// every row becomes one item with a freshly generated ID.
func BuildPackingDocument(group entities.OrderGroup, pageSize entities.PageSize, today string) entities.PackingDocument {
	if len(group.Rows) == 0 {
		return entities.PackingDocument{PageSize: pageSize}
	}
	first := group.Rows[0]

	items := make([]entities.PackingItem, 0, len(group.Rows))
	showSKU := false
	for _, row := range group.Rows {
		if row.SKU != "" {
			showSKU = true
		}
		items = append(items, entities.PackingItem{
			ID:          uuid.NewString(),
			SKU:         row.SKU,
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}

	date := strings.TrimSpace(first.Date)
	if date == "" {
		date = today
	}

	if !pageSize.Valid() {
		pageSize = entities.PageSizeA4
	}

	return entities.PackingDocument{
		Items: items,
		Sender: entities.Sender{
			Name:    first.SenderName,
			Address: first.SenderAddress,
			Phone:   first.SenderPhone,
		},
		Recipient: entities.Recipient{
			Name:    first.RecipientName,
			Address: first.RecipientAddress,
			Email:   first.RecipientEmail,
		},
		Shipment: entities.Shipment{
			Date:           date,
			OrderNumber:    first.OrderNumber,
			PONumber:       first.PONumber,
			Carrier:        first.Carrier,
			ShippingMethod: first.ShippingMethod,
			TrackingNumber: first.TrackingNumber,
			Weight:         first.Weight,
		},
		PageSize: pageSize,
		ShowSKU:  showSKU,
	}
}
