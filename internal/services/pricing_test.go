package services

import (
	"math"
	"testing"
)

func TestRowTotal(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  float64
		want      float64
	}{
		{"Plain multiplication", 100, 3, 300},
		{"Fractional quantity", 12.5, 4, 50},
		{"Negative price clamps to zero", -10, 3, 0},
		{"Negative quantity clamps to zero", 10, -3, 0},
		{"NaN price clamps to zero", math.NaN(), 3, 0},
		{"NaN quantity clamps to zero", 10, math.NaN(), 0},
		{"Zero times anything is zero", 0, 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowTotal(tt.unitPrice, tt.quantity); got != tt.want {
				t.Errorf("RowTotal(%v, %v) = %v, want %v", tt.unitPrice, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		draft OrderDraft
		want  InvoiceTotals
	}{
		{
			name: "Simple sale: one line, no discount, no charges",
			draft: OrderDraft{
				Lines: []DraftLine{{UnitPrice: 100, Quantity: 3}},
			},
			want: InvoiceTotals{ItemsSubtotal: 300, GrandTotal: 300},
		},
		{
			name: "Discounted purchase with landed cost and shipping",
			draft: OrderDraft{
				Lines: []DraftLine{
					{UnitPrice: 400, Quantity: 1},
					{UnitPrice: 200, Quantity: 3},
				},
				DiscountPercent: 10,
				ExtraCharges:    []ExtraCharge{{Label: "COGS", Amount: 50}},
				ShippingAmount:  25,
			},
			want: InvoiceTotals{ItemsSubtotal: 1000, DiscountAmount: 100, ExtraCharges: 50, ShippingAmount: 25, GrandTotal: 975},
		},
		{
			name: "Line discount has no numeric effect on totals",
			draft: OrderDraft{
				Lines: []DraftLine{{UnitPrice: 50, Quantity: 2, LineDiscount: 30}},
			},
			want: InvoiceTotals{ItemsSubtotal: 100, GrandTotal: 100},
		},
		{
			name: "Negative charges and shipping floor at zero",
			draft: OrderDraft{
				Lines:          []DraftLine{{UnitPrice: 10, Quantity: 1}},
				ExtraCharges:   []ExtraCharge{{Amount: -50}},
				ShippingAmount: -5,
			},
			want: InvoiceTotals{ItemsSubtotal: 10, GrandTotal: 10},
		},
		{
			name:  "Empty draft aggregates to zero",
			draft: OrderDraft{},
			want:  InvoiceTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.draft)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Aggregation must not depend on the order lines and charges were added in.
func TestAggregateCommutative(t *testing.T) {
	forward := OrderDraft{
		Lines: []DraftLine{
			{UnitPrice: 10, Quantity: 2},
			{UnitPrice: 30, Quantity: 1},
			{UnitPrice: 5, Quantity: 8},
		},
		DiscountPercent: 15,
		ExtraCharges:    []ExtraCharge{{Amount: 12}, {Amount: 8}},
		ShippingAmount:  4,
	}
	reversed := OrderDraft{
		Lines: []DraftLine{
			{UnitPrice: 5, Quantity: 8},
			{UnitPrice: 30, Quantity: 1},
			{UnitPrice: 10, Quantity: 2},
		},
		DiscountPercent: 15,
		ExtraCharges:    []ExtraCharge{{Amount: 8}, {Amount: 12}},
		ShippingAmount:  4,
	}

	if Aggregate(forward) != Aggregate(reversed) {
		t.Errorf("aggregation is order-dependent: %+v vs %+v", Aggregate(forward), Aggregate(reversed))
	}
}

// Recomputing on an unchanged draft must yield an identical result: the
// aggregator is a pure function with no hidden mutation.
func TestAggregateIdempotent(t *testing.T) {
	draft := OrderDraft{
		Lines:           []DraftLine{{UnitPrice: 99.99, Quantity: 3}},
		DiscountPercent: 7,
		ShippingAmount:  14,
	}

	first := Aggregate(draft)
	second := Aggregate(draft)
	if first != second {
		t.Errorf("repeated aggregation diverged: %+v vs %+v", first, second)
	}
}
