package entities

// PageSize is the paper format a packing slip is printed on.
type PageSize string

const (
	PageSizeA4     PageSize = "A4"
	PageSizeLetter PageSize = "LETTER"
)

// Valid reports whether p is a supported paper format.
func (p PageSize) Valid() bool {
	return p == PageSizeA4 || p == PageSizeLetter
}

type Sender struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Recipient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type Shipment struct {
	Date           string `json:"date"`
	OrderNumber    string `json:"order_number"`
	PONumber       string `json:"po_number"`
	Carrier        string `json:"carrier"`
	ShippingMethod string `json:"shipping_method"`
	TrackingNumber string `json:"tracking_number"`
	Weight         string `json:"weight"`
}

type PackingItem struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// LineTotal is quantity times unit price, unrounded.
func (i PackingItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}

// PackingDocument is the view rendered into one packing slip PDF.
//
// It is derived from an OrderGroup (bulk) or a form payload (single order) and never persisted.
type PackingDocument struct {
	Items     []PackingItem `json:"items"`
	Sender    Sender        `json:"sender"`
	Recipient Recipient     `json:"recipient"`
	Shipment  Shipment      `json:"shipment"`
	PageSize  PageSize      `json:"page_size"`
	ShowSKU   bool          `json:"show_sku"`
	Notes     string        `json:"notes,omitempty"`
}

// Total sums the line totals in float64; rounding happens only when formatting.
func (d PackingDocument) Total() float64 {
	total := 0.0
	for _, it := range d.Items {
		total += it.LineTotal()
	}
	return total
}
