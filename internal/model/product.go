package model

import (
	"github.com/shopspring/decimal"
)

// Product category values. The category column is an open enumeration;
// these are the two values seeded by default. New categories only need a
// category_thresholds row, not a schema change.
const (
	CategoryStandard = "standard"
	CategoryBundle   = "bundle"
)

// Product represents the product master data. Products are global across
// warehouses; stock per warehouse lives in Inventory rows.
type Product struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	CompanyID uint            `json:"company_id" gorm:"index"`
	Name      string          `json:"name" gorm:"type:varchar(255);not null"`
	SKU       string          `json:"sku" gorm:"type:varchar(100);uniqueIndex;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Category  string          `json:"category" gorm:"type:varchar(50);not null;default:'standard';index"`
}

// CategoryThreshold maps a product category to its minimum acceptable
// stock level. At most one row per category; inventory at or below the
// threshold is eligible for low-stock alerts.
type CategoryThreshold struct {
	Category  string `json:"category" gorm:"primarykey;type:varchar(50)"`
	Threshold int    `json:"threshold" gorm:"not null"`
}
