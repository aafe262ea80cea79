package product

import (
	"context"
	"errors"

	"inventory-service/internal/apperr"
	"inventory-service/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository is the storage surface for product master data.
type Repository interface {
	// SKUExists reports whether any product in the store carries the sku.
	SKUExists(ctx context.Context, sku string) (bool, error)
	// CreateWithInitialStock inserts the product and its initial
	// inventory row in one transaction. Either both rows persist or
	// neither does.
	CreateWithInitialStock(ctx context.Context, p *model.Product, warehouseID uint, initialQuantity int) (uint, error)
	// GetByID returns the product or nil when absent.
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	// List returns products, optionally filtered by category.
	List(ctx context.Context, category string) ([]model.Product, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository returns a Repository backed by the given GORM handle.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("sku = ?", sku).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) CreateWithInitialStock(ctx context.Context, p *model.Product, warehouseID uint, initialQuantity int) (uint, error) {
	var productID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		inventory := model.Inventory{
			ProductID:   p.ID,
			WarehouseID: warehouseID,
			Quantity:    initialQuantity,
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}
		productID = p.ID
		return nil
	})
	if err != nil {
		// Constraint rejections (duplicate sku racing past the pre-check,
		// unknown warehouse fk) surface as storage errors carrying the
		// driver's own detail.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return 0, apperr.Storage(err)
		}
		return 0, apperr.Internal(err)
	}
	return productID, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
