package model

import (
	"time"
)

// Company represents a tenant owning warehouses and products
type Company struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Warehouse represents a physical stock location belonging to a company
type Warehouse struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CompanyID uint      `json:"company_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Location  string    `json:"location" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
}
