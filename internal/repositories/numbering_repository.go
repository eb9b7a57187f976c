package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// NumberingRepository reads existing document numbers so the numbering
// service can derive the next sequence. Ordering by length before value keeps
// lexicographic comparison correct once a sequence outgrows its zero padding.
type NumberingRepository interface {
	// FindLastDocumentNumber returns the highest existing document number
	// matching the anchored regex pattern, or ErrNotFound when none exist.
	FindLastDocumentNumber(pattern string) (string, error)
}

type numberingRepository struct {
	db *sql.DB
}

// NewNumberingRepository creates a new instance of NumberingRepository.
func NewNumberingRepository(db *sql.DB) NumberingRepository {
	return &numberingRepository{db: db}
}

func (r *numberingRepository) FindLastDocumentNumber(pattern string) (string, error) {
	var docNumber string
	query := `SELECT doc_number FROM orders
	          WHERE doc_number ~ $1
	          ORDER BY LENGTH(doc_number) DESC, doc_number DESC
	          LIMIT 1`
	err := r.db.QueryRow(query, pattern).Scan(&docNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: finding last document number for pattern '%s': %v", ErrDatabaseError, pattern, err)
	}
	return docNumber, nil
}
