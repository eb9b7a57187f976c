package models

import "time"

// Order is the header record of a sale or purchase transaction. Monetary
// totals are stored denormalized at commit time; they are always recomputed
// from the draft before persisting, never trusted from the client.
type Order struct {
	ID             int64     `json:"id" db:"id"`
	OrderType      string    `json:"order_type" db:"order_type"` // sale | purchase
	CounterpartyID *int64    `json:"counterparty_id,omitempty" db:"counterparty_id"`
	LocationID     int64     `json:"location_id" db:"location_id"`
	DocNumber      string    `json:"doc_number" db:"doc_number"`
	DocDate        time.Time `json:"doc_date" db:"doc_date"`
	Status         string    `json:"status" db:"status"`
	PaymentStatus  string    `json:"payment_status" db:"payment_status"`
	ItemsSubtotal  float64   `json:"items_subtotal" db:"items_subtotal"`
	DiscountPct    float64   `json:"discount_percent" db:"discount_percent"`
	DiscountAmount float64   `json:"discount_amount" db:"discount_amount"`
	ExtraCharges   float64   `json:"extra_charges" db:"extra_charges"`
	ShippingAmount float64   `json:"shipping_amount" db:"shipping_amount"`
	GrandTotal     float64   `json:"grand_total" db:"grand_total"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Counterparty *Counterparty  `json:"counterparty,omitempty"`
	Location     *Location      `json:"location,omitempty"`
	Lines        []LineItem     `json:"lines,omitempty"`
	Payments     []PaymentEntry `json:"payments,omitempty"`
}

// LineItem is one product/variation entry within an order. LineDiscount is
// informational only: it is stored for audit but not subtracted from the row
// total (all discounting happens once, at invoice level).
type LineItem struct {
	ID           int64          `json:"id" db:"id"`
	OrderID      int64          `json:"order_id" db:"order_id"`
	ProductID    int64          `json:"product_id" db:"product_id"`
	VariationID  int64          `json:"variation_id" db:"variation_id"`
	SKU          string         `json:"sku" db:"sku"`
	Quantity     float64        `json:"quantity" db:"quantity"`
	UnitPrice    float64        `json:"unit_price" db:"unit_price"`
	LineDiscount float64        `json:"line_discount" db:"line_discount"`
	RowTotal     float64        `json:"row_total" db:"row_total"`
	Packing      *PackingRecord `json:"packing,omitempty"`
	Notes        *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`

	ProductName *string `json:"product_name,omitempty"`
}

// PaymentEntry is one discrete payment against an order. Multiple entries may
// exist; their sum is the amount paid to date.
type PaymentEntry struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"order_id" db:"order_id"`
	Method    string    `json:"method" db:"method"` // cash | card | bank
	Amount    float64   `json:"amount" db:"amount"`
	Reference *string   `json:"reference,omitempty" db:"reference"`
	PaidAt    time.Time `json:"paid_at" db:"paid_at"`
}

// OrderFilters defines the available filters for querying orders.
// This struct is used by both the service and repository layers.
type OrderFilters struct {
	OrderType      *string `form:"order_type"`
	CounterpartyID *int64  `form:"counterparty_id"`
	LocationID     *int64  `form:"location_id"`
	Status         *string `form:"status"`
	Date           *string `form:"date"` // Expected format YYYY-MM-DD
	Page           int     `form:"page"`
	PageSize       int     `form:"page_size"`
}
