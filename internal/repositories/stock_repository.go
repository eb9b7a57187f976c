package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bridal_erp_backend/internal/models"
)

// StockRepository is the read/write port for the per-location stock ledger.
// The commit pipeline performs its read-modify-write through GetQuantity and
// Upsert sequentially; there is no locking at this layer.
type StockRepository interface {
	GetQuantity(variationID, locationID int64) (float64, error)
	// Upsert writes the new absolute quantity for (variation, location),
	// creating the stock entry if it does not exist yet.
	Upsert(executor SQLExecutor, variationID, locationID int64, newQuantity float64) error
	GetEntry(variationID, locationID int64) (*models.StockEntry, error)
}

type stockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new instance of StockRepository.
func NewStockRepository(db *sql.DB) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) GetQuantity(variationID, locationID int64) (float64, error) {
	var quantity float64
	query := `SELECT quantity FROM stock_entries WHERE variation_id = $1 AND location_id = $2`
	err := r.db.QueryRow(query, variationID, locationID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No entry yet means zero on hand, not an error.
			return 0, nil
		}
		return 0, fmt.Errorf("%w: getting stock for variation ID %d at location %d: %v", ErrDatabaseError, variationID, locationID, err)
	}
	return quantity, nil
}

func (r *stockRepository) Upsert(executor SQLExecutor, variationID, locationID int64, newQuantity float64) error {
	query := `INSERT INTO stock_entries (variation_id, location_id, quantity, updated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (variation_id, location_id)
	          DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := executor.Exec(query, variationID, locationID, newQuantity, time.Now())
	if err != nil {
		return fmt.Errorf("%w: upserting stock for variation ID %d at location %d: %v", ErrDatabaseError, variationID, locationID, err)
	}
	return nil
}

func (r *stockRepository) GetEntry(variationID, locationID int64) (*models.StockEntry, error) {
	entry := &models.StockEntry{}
	query := `SELECT id, variation_id, location_id, quantity, updated_at
	          FROM stock_entries
	          WHERE variation_id = $1 AND location_id = $2`
	err := r.db.QueryRow(query, variationID, locationID).Scan(
		&entry.ID, &entry.VariationID, &entry.LocationID, &entry.Quantity, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting stock entry for variation ID %d at location %d: %v", ErrDatabaseError, variationID, locationID, err)
	}
	return entry, nil
}
