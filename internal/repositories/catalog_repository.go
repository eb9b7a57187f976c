package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bridal_erp_backend/internal/models"
)

// CatalogRepository defines the read side of the product catalog used by the
// variation resolver. Catalog editing (brands, categories, units) lives in a
// separate back-office service and is not exposed here.
type CatalogRepository interface {
	GetProductByID(productID int64) (*models.Product, error)
	// GetVariations returns the product's named variations annotated with the
	// stock quantity at the given location (0 when no stock entry exists).
	// It does not synthesize the default variation; that is resolver policy.
	GetVariations(productID, locationID int64) ([]models.ResolvedVariation, error)
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetProductByID(productID int64) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT id, name, sku, price_buy, price_retail, price_wholesale, unit, is_active, created_at, updated_at
	          FROM products
	          WHERE id = $1`
	err := r.db.QueryRow(query, productID).Scan(
		&product.ID, &product.Name, &product.SKU, &product.PriceBuy, &product.PriceRetail,
		&product.PriceWhole, &product.Unit, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, productID, err)
	}
	return product, nil
}

func (r *catalogRepository) GetVariations(productID, locationID int64) ([]models.ResolvedVariation, error) {
	variations := []models.ResolvedVariation{}
	query := `SELECT
	            v.id, v.product_id, v.group_id, v.name, v.sku,
	            v.price_buy, v.price_retail, v.price_wholesale,
	            vg.name AS group_name,
	            COALESCE(se.quantity, 0) AS stock_at_location
	          FROM variations v
	          LEFT JOIN variation_groups vg ON v.group_id = vg.id
	          LEFT JOIN stock_entries se ON se.variation_id = v.id AND se.location_id = $2
	          WHERE v.product_id = $1
	          ORDER BY vg.name NULLS FIRST, v.name, v.id`

	rows, err := r.db.Query(query, productID, locationID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying variations for product ID %d: %v", ErrDatabaseError, productID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rv models.ResolvedVariation
		var groupName sql.NullString

		err := rows.Scan(
			&rv.ID, &rv.ProductID, &rv.GroupID, &rv.Name, &rv.SKU,
			&rv.PriceBuy, &rv.PriceRetail, &rv.PriceWhole,
			&groupName, &rv.StockAtLocation,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning variation for product ID %d: %v", ErrDatabaseError, productID, err)
		}

		// A variation without a group is the product's default variation,
		// carrying the product's own price/SKU.
		if rv.GroupID == nil {
			rv.Kind = models.VariationDefault
		} else {
			rv.Kind = models.VariationNamed
		}
		if groupName.Valid {
			name := groupName.String
			rv.GroupName = &name
		}
		variations = append(variations, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating variation rows for product ID %d: %v", ErrDatabaseError, productID, err)
	}
	return variations, nil
}
