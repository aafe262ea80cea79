package model

import (
	"time"
)

// Inventory represents the on-hand quantity of a product at a warehouse
type Inventory struct {
	ID          uint `json:"id" gorm:"primarykey"`
	ProductID   uint `json:"product_id" gorm:"index;not null"`
	WarehouseID uint `json:"warehouse_id" gorm:"index;not null"`
	Quantity    int  `json:"quantity" gorm:"not null;default:0"`
}

// Sale is an append-only record of a sale of a product at a warehouse.
// Rows are written by an external sales-recording process; this service
// only reads them.
type Sale struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	SaleDate    time.Time `json:"sale_date" gorm:"index;not null"`
}
