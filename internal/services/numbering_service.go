package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"bridal_erp_backend/internal/repositories"
)

// NumberFormat selects how document numbers render.
type NumberFormat string

const (
	FormatLong  NumberFormat = "long"  // PREFIX-YYYY-SEQ
	FormatShort NumberFormat = "short" // PREFIX-SEQ
)

// trailingSequence extracts the numeric tail of a document number.
var trailingSequence = regexp.MustCompile(`(\d+)$`)

// NumberingService derives the next sequential human-readable document
// number. Numbers are never reused, even when the highest-numbered document
// was later cancelled.
type NumberingService interface {
	// Next returns the next document number for the prefix/format, and
	// whether the date-seeded fallback was used because the history scan
	// failed. Document entry is never blocked by a numbering failure.
	Next(prefix string, format NumberFormat, date time.Time) (number string, fellBack bool, err error)
}

type numberingService struct {
	numberingRepo repositories.NumberingRepository
}

// NewNumberingService creates a new instance of NumberingService.
func NewNumberingService(nr repositories.NumberingRepository) NumberingService {
	return &numberingService{numberingRepo: nr}
}

func (s *numberingService) Next(prefix string, format NumberFormat, date time.Time) (string, bool, error) {
	var pattern string
	switch format {
	case FormatLong:
		pattern = fmt.Sprintf(`^%s-%d-\d+$`, prefix, date.Year())
	default:
		// Anchored to a digits-only tail; long-format numbers share the
		// prefix but must never seed a short-format sequence.
		pattern = fmt.Sprintf(`^%s-\d+$`, prefix)
	}

	last, err := s.numberingRepo.FindLastDocumentNumber(pattern)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		// Availability over precision: a failed scan falls back to a
		// date-seeded placeholder instead of blocking document entry.
		return fmt.Sprintf("%s-%s-0001", prefix, date.Format("20060102")), true, nil
	}

	sequence := 0
	if last != "" {
		if match := trailingSequence.FindString(last); match != "" {
			if parsed, parseErr := strconv.Atoi(match); parseErr == nil {
				sequence = parsed
			}
		}
	}

	switch format {
	case FormatLong:
		return fmt.Sprintf("%s-%d-%04d", prefix, date.Year(), sequence+1), false, nil
	default:
		return fmt.Sprintf("%s-%04d", prefix, sequence+1), false, nil
	}
}
