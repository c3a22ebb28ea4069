package entities

// UploadRow is one item line of a bulk CSV upload.
//
// Quantity and UnitPrice are already coerced: unparsable input becomes 0.
type UploadRow struct {
	Line int `json:"line"`

	OrderNumber string `json:"order_number"`

	SenderName    string `json:"sender_name"`
	SenderAddress string `json:"sender_address"`
	SenderPhone   string `json:"sender_phone,omitempty"`

	RecipientName    string `json:"recipient_name"`
	RecipientAddress string `json:"recipient_address"`
	RecipientEmail   string `json:"recipient_email,omitempty"`

	SKU         string  `json:"sku,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`

	Date           string `json:"date,omitempty"`
	PONumber       string `json:"po_number,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Weight         string `json:"weight,omitempty"`
}
