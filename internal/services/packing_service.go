package services

import (
	"strconv"
	"strings"

	"bridal_erp_backend/internal/models"
)

// AggregatePacking collapses a packing record into its totals.
//
// The flat quick-entry triple and the box tree are mutually exclusive: when
// the triple is non-empty it wins and the tree is ignored. Inconsistent
// entries (a box with zero pieces, a blank length) never raise an error;
// they simply contribute zero to every total.
func AggregatePacking(record models.PackingRecord) models.PackingTotals {
	if record.FlatBoxes != 0 || record.FlatPieces != 0 || strings.TrimSpace(record.FlatMeasure) != "" {
		return models.PackingTotals{
			TotalBoxes:   record.FlatBoxes,
			TotalPieces:  record.FlatPieces,
			TotalMeasure: parseLength(record.FlatMeasure),
		}
	}

	totals := models.PackingTotals{TotalBoxes: len(record.Boxes)}
	for _, box := range record.Boxes {
		totals.TotalPieces += len(box.Pieces)
		for _, piece := range box.Pieces {
			totals.TotalMeasure += parseLength(piece.Length)
		}
	}
	totals.TotalPieces += len(record.LoosePieces)
	for _, piece := range record.LoosePieces {
		totals.TotalMeasure += parseLength(piece.Length)
	}
	return totals
}

// EffectiveQuantity returns the quantity a line should carry after its
// packing record is saved: the packed measure when positive, otherwise the
// quantity entered by hand.
func EffectiveQuantity(manualQuantity float64, totals models.PackingTotals) float64 {
	if totals.TotalMeasure > 0 {
		return totals.TotalMeasure
	}
	return manualQuantity
}

// parseLength reads a measured length from form text. Empty or unparseable
// values contribute 0.
func parseLength(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
