package models

import "time"

// VariationKind distinguishes a product's default variation from a named
// variation belonging to a variation group. The kind is derived from the
// group reference at read time, not stored.
type VariationKind string

const (
	VariationDefault VariationKind = "default"
	VariationNamed   VariationKind = "named"
)

// Product represents a catalog item (fabric roll, dress model, accessory).
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" binding:"required"`
	SKU         *string   `json:"sku,omitempty" db:"sku"`
	PriceBuy    float64   `json:"price_buy" db:"price_buy"`
	PriceRetail float64   `json:"price_retail" db:"price_retail"`
	PriceWhole  float64   `json:"price_wholesale" db:"price_wholesale"`
	Unit        *string   `json:"unit,omitempty" db:"unit"` // e.g. meter, piece
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// VariationGroup is a named axis on a product, e.g. "Color" or "Width".
type VariationGroup struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Variation is a concrete purchasable/sellable variant of a product.
// A product with no variation groups still carries one variation row of
// kind VariationDefault (group_id NULL) holding its own price and SKU.
type Variation struct {
	ID          int64         `json:"id" db:"id"`
	ProductID   int64         `json:"product_id" db:"product_id"`
	GroupID     *int64        `json:"group_id,omitempty" db:"group_id"`
	Kind        VariationKind `json:"kind"`
	GroupName   *string       `json:"group_name,omitempty"`
	Name        string        `json:"name" db:"name"`
	SKU         string        `json:"sku" db:"sku"`
	PriceBuy    float64       `json:"price_buy" db:"price_buy"`
	PriceRetail float64       `json:"price_retail" db:"price_retail"`
	PriceWhole  float64       `json:"price_wholesale" db:"price_wholesale"`
}

// ResolvedVariation is a Variation annotated for a specific location and
// price role. Selecting one is the single point where SKU, displayed stock
// and unit price are bound to a line item.
type ResolvedVariation struct {
	Variation
	StockAtLocation float64 `json:"stock_at_location"`
	UnitPrice       float64 `json:"unit_price"`
}

// Counterparty is the customer or supplier side of an order. Walk-in sales
// carry no counterparty at all.
type Counterparty struct {
	ID          int64     `json:"id" db:"id"`
	PartyType   string    `json:"party_type" db:"party_type"` // customer | supplier
	FullName    string    `json:"full_name" db:"full_name"`
	PhoneNumber *string   `json:"phone_number,omitempty" db:"phone_number"`
	IsWholesale bool      `json:"is_wholesale" db:"is_wholesale"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Location is a branch/store holding its own stock ledger.
type Location struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
