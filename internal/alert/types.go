package alert

// SupplierInfo is the supplier attached to an alert row, if any. The
// supplier's free-text contact field is mapped verbatim to ContactEmail.
type SupplierInfo struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// Alert is one low-stock alert row.
type Alert struct {
	ProductID         uint          `json:"product_id"`
	ProductName       string        `json:"product_name"`
	SKU               string        `json:"sku"`
	WarehouseID       uint          `json:"warehouse_id"`
	WarehouseName     string        `json:"warehouse_name"`
	CurrentStock      int           `json:"current_stock"`
	Threshold         int           `json:"threshold"`
	DaysUntilStockout *int          `json:"days_until_stockout"`
	Supplier          *SupplierInfo `json:"supplier"`
}

// Report is the full alert listing for a company.
type Report struct {
	Alerts      []Alert `json:"alerts"`
	TotalAlerts int     `json:"total_alerts"`
}
