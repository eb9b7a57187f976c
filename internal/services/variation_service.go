package services

import (
	"errors"
	"fmt"

	"bridal_erp_backend/internal/models"
	"bridal_erp_backend/internal/repositories"
)

// PriceRole selects which of a variation's three prices applies: buy-side
// for purchase entry, retail or wholesale for sale entry depending on the
// counterparty's classification.
type PriceRole string

const (
	RoleBuy       PriceRole = "buy"
	RoleRetail    PriceRole = "retail"
	RoleWholesale PriceRole = "wholesale"
)

// Order type constants
const (
	OrderTypeSale     = "sale"
	OrderTypePurchase = "purchase"
)

// PriceRoleFor derives the price role from the order context: purchases
// always price at buy, sales split retail/wholesale by counterparty.
func PriceRoleFor(orderType string, counterparty *models.Counterparty) PriceRole {
	if orderType == OrderTypePurchase {
		return RoleBuy
	}
	if counterparty != nil && counterparty.IsWholesale {
		return RoleWholesale
	}
	return RoleRetail
}

// ParsePriceRole validates a role string from the API.
func ParsePriceRole(raw string) (PriceRole, error) {
	switch PriceRole(raw) {
	case RoleBuy, RoleRetail, RoleWholesale:
		return PriceRole(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown price role '%s'", ErrValidation, raw)
	}
}

// --- VariationResolver Interface ---

// VariationResolver returns the purchasable variants of a product at a
// location. Selecting one of them is the single point where SKU, displayed
// stock and unit price are bound together; they are never set independently
// afterward.
type VariationResolver interface {
	Resolve(productID, locationID int64, role PriceRole) ([]models.ResolvedVariation, error)
	// ResolveOne re-fetches a specific bound variation; used by the commit
	// pipeline to detect variations deleted between selection and commit.
	ResolveOne(productID, variationID, locationID int64, role PriceRole) (*models.ResolvedVariation, error)
	// StockAt reads the current stock entry for a bound variation so the
	// entry form can refresh on-hand quantity after a commit.
	StockAt(variationID, locationID int64) (*models.StockEntry, error)
}

type variationResolver struct {
	catalogRepo repositories.CatalogRepository
	stockRepo   repositories.StockRepository
}

// NewVariationResolver creates a new instance of VariationResolver.
func NewVariationResolver(catalogRepo repositories.CatalogRepository, stockRepo repositories.StockRepository) VariationResolver {
	return &variationResolver{catalogRepo: catalogRepo, stockRepo: stockRepo}
}

func (s *variationResolver) Resolve(productID, locationID int64, role PriceRole) ([]models.ResolvedVariation, error) {
	variations, err := s.catalogRepo.GetVariations(productID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variations for product %d: %w", productID, err)
	}

	// Every product carries at least a default-kind variation row; zero rows
	// is a catalog inconsistency the caller must surface as a blocking
	// error, never silently skip. A product that does not exist at all is a
	// plain validation failure instead.
	if len(variations) == 0 {
		if _, err := s.catalogRepo.GetProductByID(productID); errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d does not exist", ErrValidation, productID)
		}
		return nil, fmt.Errorf("%w: product %d", ErrEmptyCatalog, productID)
	}

	for i := range variations {
		variations[i].UnitPrice = priceFor(&variations[i].Variation, role)
	}
	return variations, nil
}

func (s *variationResolver) ResolveOne(productID, variationID, locationID int64, role PriceRole) (*models.ResolvedVariation, error) {
	variations, err := s.Resolve(productID, locationID, role)
	if err != nil {
		return nil, err
	}
	for i := range variations {
		if variations[i].ID == variationID {
			return &variations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: variation %d of product %d", ErrVariationMissing, variationID, productID)
}

func (s *variationResolver) StockAt(variationID, locationID int64) (*models.StockEntry, error) {
	entry, err := s.stockRepo.GetEntry(variationID, locationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// No entry yet reads as zero on hand.
			return &models.StockEntry{VariationID: variationID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("failed to read stock for variation %d at location %d: %w", variationID, locationID, err)
	}
	return entry, nil
}

// SelectionRequired reports whether the operator must pick a variation
// before a line can be added. A single resolved variation (the default kind,
// or a lone named one) is used directly; more than one blocks line creation
// until exactly one is chosen. There is no bulk-add path.
func SelectionRequired(variations []models.ResolvedVariation) bool {
	return len(variations) > 1
}

func priceFor(v *models.Variation, role PriceRole) float64 {
	switch role {
	case RoleBuy:
		return v.PriceBuy
	case RoleWholesale:
		return v.PriceWhole
	default:
		return v.PriceRetail
	}
}
