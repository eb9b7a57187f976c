package services

import (
	"testing"

	"bridal_erp_backend/internal/models"
)

func TestAggregatePacking(t *testing.T) {
	tests := []struct {
		name   string
		record models.PackingRecord
		want   models.PackingTotals
	}{
		{
			name: "Tree mode sums boxes, pieces and lengths",
			record: models.PackingRecord{
				Boxes: []models.PackingBox{
					{Pieces: []models.PackingPiece{{Length: "12.5"}, {Length: "7.5"}}},
					{Pieces: []models.PackingPiece{{Length: "10"}}},
				},
				LoosePieces: []models.PackingPiece{{Length: "5"}, {Length: "5"}},
			},
			want: models.PackingTotals{TotalBoxes: 2, TotalPieces: 5, TotalMeasure: 40},
		},
		{
			name: "Flat triple is authoritative and the tree is ignored",
			record: models.PackingRecord{
				Boxes:       []models.PackingBox{{Pieces: []models.PackingPiece{{Length: "100"}}}},
				FlatBoxes:   3,
				FlatPieces:  9,
				FlatMeasure: "27.75",
			},
			want: models.PackingTotals{TotalBoxes: 3, TotalPieces: 9, TotalMeasure: 27.75},
		},
		{
			name: "Unparseable lengths contribute zero",
			record: models.PackingRecord{
				Boxes: []models.PackingBox{
					{Pieces: []models.PackingPiece{{Length: "abc"}, {Length: ""}, {Length: "3"}}},
				},
			},
			want: models.PackingTotals{TotalBoxes: 1, TotalPieces: 3, TotalMeasure: 3},
		},
		{
			name: "Box with zero pieces contributes zero to every total but still counts as a box",
			record: models.PackingRecord{
				Boxes: []models.PackingBox{{}, {Pieces: []models.PackingPiece{{Length: "2"}}}},
			},
			want: models.PackingTotals{TotalBoxes: 2, TotalPieces: 1, TotalMeasure: 2},
		},
		{
			name:   "Empty record aggregates to zero",
			record: models.PackingRecord{},
			want:   models.PackingTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregatePacking(tt.record)
			if got != tt.want {
				t.Errorf("AggregatePacking() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEffectiveQuantity(t *testing.T) {
	tests := []struct {
		name   string
		manual float64
		totals models.PackingTotals
		want   float64
	}{
		{"Packed measure overrides manual entry", 1, models.PackingTotals{TotalMeasure: 40}, 40},
		{"Zero measure retains manual quantity", 7, models.PackingTotals{TotalBoxes: 2}, 7},
		{"Both zero stays zero", 0, models.PackingTotals{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveQuantity(tt.manual, tt.totals); got != tt.want {
				t.Errorf("EffectiveQuantity(%v, %+v) = %v, want %v", tt.manual, tt.totals, got, tt.want)
			}
		})
	}
}
