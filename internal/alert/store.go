package alert

import (
	"context"
	"errors"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"gorm.io/gorm"
)

// CandidateRow is one inventory row that passed the low-stock join:
// company-scoped, recently active, and at or below its category threshold.
type CandidateRow struct {
	ProductID     uint
	ProductName   string
	SKU           string
	WarehouseID   uint
	WarehouseName string
	CurrentStock  int
	Threshold     int
}

// SupplierRef is a supplier resolved for a product.
type SupplierRef struct {
	ID          uint
	Name        string
	ContactInfo string
}

// Store is the query surface the alert engine needs from the database.
type Store interface {
	// CompanyExists reports whether the company id is known.
	CompanyExists(ctx context.Context, companyID uint) (bool, error)
	// CandidateRows returns inventory rows for the company whose product
	// has at least one sale since the given time and whose quantity is at
	// or below the product category's threshold. Rows come back in the
	// join's natural order; categories without a threshold row yield
	// nothing.
	CandidateRows(ctx context.Context, companyID uint, since time.Time) ([]CandidateRow, error)
	// SalesTotals returns, per product of the company, the total quantity
	// sold since the given time.
	SalesTotals(ctx context.Context, companyID uint, since time.Time) (map[uint]int64, error)
	// FirstSupplier returns the linked supplier with the lowest id, or
	// nil when the product has no supplier links.
	FirstSupplier(ctx context.Context, productID uint) (*SupplierRef, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the given GORM handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CompanyExists(ctx context.Context, companyID uint) (bool, error) {
	defer prometheus.TrackDBOperation("alert_company_exists")(time.Now())

	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Company{}).
		Where("id = ?", companyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) CandidateRows(ctx context.Context, companyID uint, since time.Time) ([]CandidateRow, error) {
	defer prometheus.TrackDBOperation("alert_candidate_rows")(time.Now())

	recentProducts := s.db.
		Table("sales").
		Select("sales.product_id").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("products.company_id = ? AND sales.sale_date >= ?", companyID, since)

	var rows []CandidateRow
	err := s.db.WithContext(ctx).
		Table("inventories").
		Select(`inventories.product_id,
			products.name AS product_name,
			products.sku,
			inventories.warehouse_id,
			warehouses.name AS warehouse_name,
			inventories.quantity AS current_stock,
			category_thresholds.threshold`).
		Joins("JOIN products ON products.id = inventories.product_id").
		Joins("JOIN warehouses ON warehouses.id = inventories.warehouse_id").
		Joins("JOIN category_thresholds ON category_thresholds.category = products.category").
		Where("products.company_id = ?", companyID).
		Where("warehouses.company_id = ?", companyID).
		Where("inventories.quantity <= category_thresholds.threshold").
		Where("inventories.product_id IN (?)", recentProducts).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) SalesTotals(ctx context.Context, companyID uint, since time.Time) (map[uint]int64, error) {
	defer prometheus.TrackDBOperation("alert_sales_totals")(time.Now())

	var totals []struct {
		ProductID uint
		Total     int64
	}
	err := s.db.WithContext(ctx).
		Table("sales").
		Select("sales.product_id, SUM(sales.quantity) AS total").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("products.company_id = ? AND sales.sale_date >= ?", companyID, since).
		Group("sales.product_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]int64, len(totals))
	for _, t := range totals {
		result[t.ProductID] = t.Total
	}
	return result, nil
}

func (s *gormStore) FirstSupplier(ctx context.Context, productID uint) (*SupplierRef, error) {
	defer prometheus.TrackDBOperation("alert_first_supplier")(time.Now())

	var ref SupplierRef
	err := s.db.WithContext(ctx).
		Table("suppliers").
		Select("suppliers.id, suppliers.name, suppliers.contact_info").
		Joins("JOIN product_suppliers ON product_suppliers.supplier_id = suppliers.id").
		Where("product_suppliers.product_id = ?", productID).
		Order("suppliers.id ASC").
		Take(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ref, nil
}
