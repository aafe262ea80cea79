package model

import (
	"time"
)

// Supplier represents a vendor that products can be sourced from
type Supplier struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	ContactInfo string    `json:"contact_info" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductSupplier links products to suppliers. The link carries no
// metadata; supplier selection for alerts uses the lowest supplier id.
type ProductSupplier struct {
	ProductID  uint `json:"product_id" gorm:"primarykey"`
	SupplierID uint `json:"supplier_id" gorm:"primarykey"`
}
