package services

import "math"

// RowTotal computes a line's total from unit price and quantity. Negative or
// non-numeric (NaN) inputs are treated as 0, never rejected.
//
// The line-level discount is deliberately absent here: it is stored for
// audit but all discounting happens once, at invoice level.
func RowTotal(unitPrice, quantity float64) float64 {
	if math.IsNaN(unitPrice) || unitPrice < 0 {
		unitPrice = 0
	}
	if math.IsNaN(quantity) || quantity < 0 {
		quantity = 0
	}
	return unitPrice * quantity
}

// DraftLine is one line of an order draft as seen by the aggregator.
type DraftLine struct {
	UnitPrice    float64 `json:"unit_price"`
	Quantity     float64 `json:"quantity"`
	LineDiscount float64 `json:"line_discount"` // informational only
}

// ExtraCharge is a fixed invoice-level charge: "services" on a sale,
// landed cost (COGS) on a purchase.
type ExtraCharge struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// OrderDraft is an immutable snapshot of the entry form state. The
// aggregator is a pure function of this snapshot; it never reads ambient
// state, so recomputing it on an unchanged draft yields an identical total.
type OrderDraft struct {
	Lines           []DraftLine   `json:"lines"`
	DiscountPercent float64       `json:"discount_percent"` // policy-clamped to [0,100] by the caller
	ExtraCharges    []ExtraCharge `json:"extra_charges"`
	ShippingAmount  float64       `json:"shipping_amount"`
}

// InvoiceTotals is the aggregation of a draft.
type InvoiceTotals struct {
	ItemsSubtotal  float64 `json:"items_subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	ExtraCharges   float64 `json:"extra_charges"`
	ShippingAmount float64 `json:"shipping_amount"`
	GrandTotal     float64 `json:"grand_total"`
}

// Aggregate computes invoice totals from a draft:
//
//	grandTotal = (itemsSubtotal - discountAmount) + extraCharges + shipping
//
// Every term floors at 0 before use. Aggregation is commutative over the
// order lines and charges were added in.
func Aggregate(draft OrderDraft) InvoiceTotals {
	var subtotal float64
	for _, line := range draft.Lines {
		subtotal += RowTotal(line.UnitPrice, line.Quantity)
	}

	discount := subtotal * (floorZero(draft.DiscountPercent) / 100)
	if discount < 0 {
		discount = 0
	}

	var extra float64
	for _, charge := range draft.ExtraCharges {
		extra += floorZero(charge.Amount)
	}
	shipping := floorZero(draft.ShippingAmount)

	return InvoiceTotals{
		ItemsSubtotal:  subtotal,
		DiscountAmount: discount,
		ExtraCharges:   extra,
		ShippingAmount: shipping,
		GrandTotal:     (subtotal - discount) + extra + shipping,
	}
}

func floorZero(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
