package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bridal_erp_backend/internal/models"
)

// OperatorRepository backs the thin login perimeter. Full user/session
// management is handled by an external identity service.
type OperatorRepository interface {
	GetOperatorByUsername(username string) (*models.Operator, error)
}

type operatorRepository struct {
	db *sql.DB
}

// NewOperatorRepository creates a new instance of OperatorRepository.
func NewOperatorRepository(db *sql.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) GetOperatorByUsername(username string) (*models.Operator, error) {
	operator := &models.Operator{}
	query := `SELECT id, username, password_hash, role, is_active, created_at
	          FROM operators
	          WHERE username = $1`
	err := r.db.QueryRow(query, username).Scan(
		&operator.ID, &operator.Username, &operator.PasswordHash, &operator.Role,
		&operator.IsActive, &operator.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting operator by username '%s': %v", ErrDatabaseError, username, err)
	}
	return operator, nil
}
