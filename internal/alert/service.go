package alert

import (
	"context"
	"time"

	"inventory-service/internal/apperr"
)

// Service computes low-stock alerts for a company. It recomputes on
// every call and keeps no state between invocations.
type Service struct {
	store      Store
	windowDays int
	now        func() time.Time
}

// NewService returns an alert service using the given store and trailing
// sales window in days.
func NewService(store Store, windowDays int) *Service {
	return &Service{
		store:      store,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// LowStockAlerts produces the alert list for the company.
//
// Only products with at least one sale inside the trailing window are
// eligible; a product sitting below its threshold with no recent sales
// never alerts. The returned order matches the store's join order, and
// callers must not assume a severity sort.
func (s *Service) LowStockAlerts(ctx context.Context, companyID uint) (*Report, error) {
	exists, err := s.store.CompanyExists(ctx, companyID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !exists {
		return nil, apperr.NotFound("Company not found")
	}

	since := s.now().Add(-time.Duration(s.windowDays) * 24 * time.Hour)

	candidates, err := s.store.CandidateRows(ctx, companyID, since)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	totals, err := s.store.SalesTotals(ctx, companyID, since)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	alerts := make([]Alert, 0, len(candidates))
	for _, row := range candidates {
		avgDaily := AverageDailySales(totals[row.ProductID], s.windowDays)

		var supplier *SupplierInfo
		ref, err := s.store.FirstSupplier(ctx, row.ProductID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		if ref != nil {
			supplier = &SupplierInfo{
				ID:           ref.ID,
				Name:         ref.Name,
				ContactEmail: ref.ContactInfo,
			}
		}

		alerts = append(alerts, Alert{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.CurrentStock,
			Threshold:         row.Threshold,
			DaysUntilStockout: DaysUntilStockout(row.CurrentStock, avgDaily),
			Supplier:          supplier,
		})
	}

	return &Report{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}
