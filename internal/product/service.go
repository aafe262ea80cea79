package product

import (
	"context"
	"errors"

	"inventory-service/internal/apperr"
	"inventory-service/internal/model"

	"github.com/shopspring/decimal"
)

// CreateInput carries the fields of a product-creation request. Pointer
// fields distinguish absent from zero-valued input; all five required
// fields must be present.
type CreateInput struct {
	Name            *string
	SKU             *string
	Price           *string
	WarehouseID     *uint
	InitialQuantity *int
	// Category is optional and defaults to the standard category.
	Category *string
}

// requiredFields is checked in declaration order; the first missing
// field is the one reported.
var requiredFields = []struct {
	name    string
	present func(*CreateInput) bool
}{
	{"name", func(in *CreateInput) bool { return in.Name != nil }},
	{"sku", func(in *CreateInput) bool { return in.SKU != nil }},
	{"price", func(in *CreateInput) bool { return in.Price != nil }},
	{"warehouse_id", func(in *CreateInput) bool { return in.WarehouseID != nil }},
	{"initial_quantity", func(in *CreateInput) bool { return in.InitialQuantity != nil }},
}

// Service validates and persists product master data.
type Service struct {
	repo Repository
}

// NewService returns a product service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input and persists the product together with its
// initial inventory row as one atomic unit. The sku pre-check is a fast
// path only; the store's unique index on sku is the source of truth, so
// a concurrent duplicate that slips past the pre-check fails inside the
// transaction and nothing persists.
func (s *Service) Create(ctx context.Context, in *CreateInput) (uint, error) {
	for _, f := range requiredFields {
		if !f.present(in) {
			return 0, apperr.Validation("Missing required field: %s", f.name)
		}
	}

	price, err := decimal.NewFromString(*in.Price)
	if err != nil {
		return 0, apperr.Validation("Invalid price format")
	}
	if price.IsNegative() {
		return 0, apperr.Validation("Price must not be negative")
	}

	exists, err := s.repo.SKUExists(ctx, *in.SKU)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	if exists {
		return 0, apperr.Conflict("SKU already exists")
	}

	category := model.CategoryStandard
	if in.Category != nil && *in.Category != "" {
		category = *in.Category
	}

	p := model.Product{
		Name:     *in.Name,
		SKU:      *in.SKU,
		Price:    price,
		Category: category,
	}
	productID, err := s.repo.CreateWithInitialStock(ctx, &p, *in.WarehouseID, *in.InitialQuantity)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return 0, err
		}
		return 0, apperr.Internal(err)
	}
	return productID, nil
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

// List returns products, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return products, nil
}
