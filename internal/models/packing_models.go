package models

// PackingPiece is one cut/piece with its measured length. The length arrives
// from the entry form as free text; unparseable values count as 0.
type PackingPiece struct {
	Label  string `json:"label,omitempty"`
	Length string `json:"length"`
}

// PackingBox groups pieces packed together.
type PackingBox struct {
	Label  string         `json:"label,omitempty"`
	Pieces []PackingPiece `json:"pieces"`
}

// PackingRecord is the structured box/piece/length breakdown attached to a
// line item. The flat quick-entry triple and the box tree are mutually
// exclusive entry modes: when the flat triple is non-empty it is
// authoritative and the tree is ignored.
type PackingRecord struct {
	Boxes       []PackingBox   `json:"boxes,omitempty"`
	LoosePieces []PackingPiece `json:"loose_pieces,omitempty"`

	// Flat quick-entry triple.
	FlatBoxes   int    `json:"flat_boxes,omitempty"`
	FlatPieces  int    `json:"flat_pieces,omitempty"`
	FlatMeasure string `json:"flat_measure,omitempty"`
}

// PackingTotals is the aggregate a PackingRecord collapses into. TotalMeasure
// becomes the line's effective quantity when greater than zero.
type PackingTotals struct {
	TotalBoxes   int     `json:"total_boxes"`
	TotalPieces  int     `json:"total_pieces"`
	TotalMeasure float64 `json:"total_measure"`
}
