package services

import (
	"errors"
	"testing"

	"bridal_erp_backend/internal/models"
	"bridal_erp_backend/internal/repositories"
)

type mockCatalogRepo struct {
	products   map[int64]*models.Product
	variations map[int64][]models.ResolvedVariation
	err        error
}

func (m *mockCatalogRepo) GetProductByID(productID int64) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[productID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return product, nil
}

func (m *mockCatalogRepo) GetVariations(productID, locationID int64) ([]models.ResolvedVariation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.variations[productID], nil
}

func groupID(id int64) *int64 { return &id }

func namedVariation(id int64, name, sku string, buy, retail, whole, stock float64) models.ResolvedVariation {
	return models.ResolvedVariation{
		Variation: models.Variation{
			ID: id, ProductID: 10, GroupID: groupID(1), Kind: models.VariationNamed,
			Name: name, SKU: sku, PriceBuy: buy, PriceRetail: retail, PriceWhole: whole,
		},
		StockAtLocation: stock,
	}
}

func TestResolveBindsPricePerRole(t *testing.T) {
	repo := &mockCatalogRepo{variations: map[int64][]models.ResolvedVariation{
		10: {namedVariation(101, "Ivory", "FAB-IV", 80, 150, 120, 42)},
	}}
	resolver := NewVariationResolver(repo, newMockStockRepo())

	tests := []struct {
		name string
		role PriceRole
		want float64
	}{
		{"Buy role uses purchase price", RoleBuy, 80},
		{"Retail role uses retail price", RoleRetail, 150},
		{"Wholesale role uses wholesale price", RoleWholesale, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := resolver.Resolve(10, 1, tt.role)
			if err != nil {
				t.Fatalf("Resolve() returned unexpected error: %v", err)
			}
			if len(resolved) != 1 {
				t.Fatalf("Resolve() returned %d variations, want 1", len(resolved))
			}
			if resolved[0].UnitPrice != tt.want {
				t.Errorf("UnitPrice = %v, want %v", resolved[0].UnitPrice, tt.want)
			}
		})
	}
}

func TestResolveKeepsVariantsDistinct(t *testing.T) {
	repo := &mockCatalogRepo{variations: map[int64][]models.ResolvedVariation{
		10: {
			namedVariation(101, "Ivory", "FAB-IV", 80, 150, 120, 42),
			namedVariation(102, "Champagne", "FAB-CH", 85, 160, 130, 3),
		},
	}}
	resolver := NewVariationResolver(repo, newMockStockRepo())

	resolved, err := resolver.Resolve(10, 1, RoleRetail)
	if err != nil {
		t.Fatalf("Resolve() returned unexpected error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("Resolve() returned %d variations, want 2", len(resolved))
	}
	if resolved[0].SKU == resolved[1].SKU {
		t.Error("variations share a SKU; each variant must carry its own")
	}
	if resolved[0].StockAtLocation == resolved[1].StockAtLocation {
		t.Error("variations share stock; each variant tracks stock independently")
	}
	if !SelectionRequired(resolved) {
		t.Error("SelectionRequired = false for two variations, want true")
	}
}

func TestSelectionRequired(t *testing.T) {
	one := []models.ResolvedVariation{namedVariation(101, "Ivory", "FAB-IV", 80, 150, 120, 0)}
	if SelectionRequired(one) {
		t.Error("SelectionRequired = true for a lone variation, want false")
	}

	defaultOnly := []models.ResolvedVariation{{
		Variation: models.Variation{ID: 201, ProductID: 11, Kind: models.VariationDefault, Name: "Plain Tulle", SKU: "TUL-01", PriceRetail: 45},
	}}
	if SelectionRequired(defaultOnly) {
		t.Error("SelectionRequired = true for the default variation, want false")
	}
}

func TestResolveEmptyCatalog(t *testing.T) {
	repo := &mockCatalogRepo{
		products:   map[int64]*models.Product{99: {ID: 99, Name: "Orphaned Lace"}},
		variations: map[int64][]models.ResolvedVariation{},
	}
	resolver := NewVariationResolver(repo, newMockStockRepo())

	_, err := resolver.Resolve(99, 1, RoleRetail)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Resolve() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestResolveUnknownProduct(t *testing.T) {
	resolver := NewVariationResolver(&mockCatalogRepo{}, newMockStockRepo())

	_, err := resolver.Resolve(404, 1, RoleRetail)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Resolve() error = %v, want ErrValidation for a product that does not exist", err)
	}
}

func TestStockAt(t *testing.T) {
	stockRepo := newMockStockRepo()
	stockRepo.quantities[stockKey{101, 1}] = 42
	resolver := NewVariationResolver(&mockCatalogRepo{}, stockRepo)

	entry, err := resolver.StockAt(101, 1)
	if err != nil {
		t.Fatalf("StockAt() error = %v", err)
	}
	if entry.Quantity != 42 {
		t.Errorf("StockAt() quantity = %v, want 42", entry.Quantity)
	}

	missing, err := resolver.StockAt(999, 1)
	if err != nil {
		t.Fatalf("StockAt() for absent entry error = %v, want nil", err)
	}
	if missing.Quantity != 0 {
		t.Errorf("StockAt() for absent entry quantity = %v, want 0", missing.Quantity)
	}
}

func TestResolveOne(t *testing.T) {
	repo := &mockCatalogRepo{variations: map[int64][]models.ResolvedVariation{
		10: {
			namedVariation(101, "Ivory", "FAB-IV", 80, 150, 120, 42),
			namedVariation(102, "Champagne", "FAB-CH", 85, 160, 130, 3),
		},
	}}
	resolver := NewVariationResolver(repo, newMockStockRepo())

	got, err := resolver.ResolveOne(10, 102, 1, RoleWholesale)
	if err != nil {
		t.Fatalf("ResolveOne() returned unexpected error: %v", err)
	}
	if got.SKU != "FAB-CH" || got.UnitPrice != 130 {
		t.Errorf("ResolveOne() = SKU %q price %v, want FAB-CH at 130", got.SKU, got.UnitPrice)
	}

	if _, err := resolver.ResolveOne(10, 999, 1, RoleWholesale); !errors.Is(err, ErrVariationMissing) {
		t.Errorf("ResolveOne() error = %v, want ErrVariationMissing", err)
	}
}

func TestPriceRoleFor(t *testing.T) {
	wholesale := &models.Counterparty{PartyType: "customer", IsWholesale: true}
	retail := &models.Counterparty{PartyType: "customer"}

	tests := []struct {
		name         string
		orderType    string
		counterparty *models.Counterparty
		want         PriceRole
	}{
		{"Purchases always price at buy", OrderTypePurchase, wholesale, RoleBuy},
		{"Wholesale customer prices at wholesale", OrderTypeSale, wholesale, RoleWholesale},
		{"Retail customer prices at retail", OrderTypeSale, retail, RoleRetail},
		{"Walk-in sale prices at retail", OrderTypeSale, nil, RoleRetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceRoleFor(tt.orderType, tt.counterparty); got != tt.want {
				t.Errorf("PriceRoleFor(%q) = %q, want %q", tt.orderType, got, tt.want)
			}
		})
	}
}

func TestParsePriceRole(t *testing.T) {
	if _, err := ParsePriceRole("retail"); err != nil {
		t.Errorf("ParsePriceRole(retail) error = %v, want nil", err)
	}
	if _, err := ParsePriceRole("msrp"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParsePriceRole(msrp) error = %v, want ErrValidation", err)
	}
}
