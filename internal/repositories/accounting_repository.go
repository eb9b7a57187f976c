package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"bridal_erp_backend/internal/models"
)

// AccountingRepository is the adapter in front of the accounting ledger.
// The commit pipeline treats RecordPayment as fire-and-forget: a failure here
// is reported as a warning, never propagated as a commit failure.
type AccountingRepository interface {
	RecordPayment(orderID int64, amount float64, method string, reference *string, description string) error
	GetTransactionsByOrderID(orderID int64) ([]models.AccountTransaction, error)
}

type accountingRepository struct {
	db *sql.DB
}

// NewAccountingRepository creates a new instance of AccountingRepository.
func NewAccountingRepository(db *sql.DB) AccountingRepository {
	return &accountingRepository{db: db}
}

func (r *accountingRepository) RecordPayment(orderID int64, amount float64, method string, reference *string, description string) error {
	query := `INSERT INTO account_transactions (order_id, amount, method, reference, description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(query, orderID, amount, method, reference, description, time.Now())
	if err != nil {
		return fmt.Errorf("%w: recording payment of %.2f for order ID %d: %v", ErrDatabaseError, amount, orderID, err)
	}
	return nil
}

func (r *accountingRepository) GetTransactionsByOrderID(orderID int64) ([]models.AccountTransaction, error) {
	transactions := []models.AccountTransaction{}
	query := `SELECT id, order_id, amount, method, reference, description, created_at
	          FROM account_transactions
	          WHERE order_id = $1
	          ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying account transactions for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tx models.AccountTransaction
		err := rows.Scan(&tx.ID, &tx.OrderID, &tx.Amount, &tx.Method, &tx.Reference, &tx.Description, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning account transaction for order ID %d: %v", ErrDatabaseError, orderID, err)
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating account transaction rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return transactions, nil
}
