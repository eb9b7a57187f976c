package services

import (
	"errors"
	"fmt"
)

// Commit failure taxonomy. The engine's own logic only branches on these
// kinds; ecosystem-specific error shapes stop at the repository boundary.
var (
	ErrValidation        = errors.New("validation failed")
	ErrVariationMissing  = errors.New("bound variation no longer resolves")
	ErrEmptyCatalog      = errors.New("product resolves to zero variations")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderFinalized    = errors.New("order already finalized; raw deletion requires compensating entries")
)

// CommitStage identifies which step of the commit pipeline a failure or
// warning belongs to, so the caller can render a stage-aware message.
type CommitStage string

const (
	StageHeader    CommitStage = "header"
	StageLines     CommitStage = "lines"
	StageStock     CommitStage = "stock"
	StagePayment   CommitStage = "payment"
	StageNumbering CommitStage = "numbering"
)

// CommitError is a fatal commit failure. By the time it is returned, any
// partially written state has been compensated away.
type CommitError struct {
	Stage CommitStage `json:"stage"`
	Err   error       `json:"-"`
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed at stage %s: %v", e.Stage, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// CommitWarning is a non-fatal defect collected during an otherwise
// successful commit (stock sync, accounting emission, numbering fallback).
// Warnings are returned to the caller, never only logged.
type CommitWarning struct {
	Stage   CommitStage `json:"stage"`
	Message string      `json:"message"`
}

// CommitResult is what every commit operation returns on success. Warnings
// let the caller display "saved, but ..." feedback.
type CommitResult struct {
	OrderID   int64           `json:"order_id"`
	DocNumber string          `json:"doc_number"`
	Warnings  []CommitWarning `json:"warnings,omitempty"`
}
