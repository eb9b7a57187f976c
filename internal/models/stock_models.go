package models

import "time"

// StockEntry is the quantity-on-hand record keyed by (variation, location).
// Available quantity never goes negative through a sale commit; the entry is
// created on first purchase if it does not yet exist.
type StockEntry struct {
	ID          int64     `json:"id" db:"id"`
	VariationID int64     `json:"variation_id" db:"variation_id"`
	LocationID  int64     `json:"location_id" db:"location_id"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AccountTransaction is the row shape handed to the accounting sink when a
// finalized order's payments are emitted to the ledger.
type AccountTransaction struct {
	ID          int64     `json:"id" db:"id"`
	OrderID     int64     `json:"order_id" db:"order_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Method      string    `json:"method" db:"method"`
	Reference   *string   `json:"reference,omitempty" db:"reference"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
