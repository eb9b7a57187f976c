package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bridal_erp_backend/internal/models"
)

// CounterpartyRepository reads customer/supplier master data. Management of
// counterparties themselves is back-office CRUD outside this engine.
type CounterpartyRepository interface {
	GetCounterpartyByID(counterpartyID int64) (*models.Counterparty, error)
}

type counterpartyRepository struct {
	db *sql.DB
}

// NewCounterpartyRepository creates a new instance of CounterpartyRepository.
func NewCounterpartyRepository(db *sql.DB) CounterpartyRepository {
	return &counterpartyRepository{db: db}
}

func (r *counterpartyRepository) GetCounterpartyByID(counterpartyID int64) (*models.Counterparty, error) {
	counterparty := &models.Counterparty{}
	query := `SELECT id, party_type, full_name, phone_number, is_wholesale, created_at, updated_at
	          FROM counterparties
	          WHERE id = $1`
	err := r.db.QueryRow(query, counterpartyID).Scan(
		&counterparty.ID, &counterparty.PartyType, &counterparty.FullName, &counterparty.PhoneNumber,
		&counterparty.IsWholesale, &counterparty.CreatedAt, &counterparty.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting counterparty by ID %d: %v", ErrDatabaseError, counterpartyID, err)
	}
	return counterparty, nil
}
