package alert_test

import (
	"context"
	"os"
	"testing"
	"time"

	"inventory-service/internal/alert"
	"inventory-service/internal/model"
	"inventory-service/pkg/config"
	"inventory-service/prometheus"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "alerttest"},
	})
	os.Exit(m.Run())
}

// setupStoreTestDB connects to the test database, migrates the schema,
// and seeds a two-company fixture exercising every branch of the
// candidate join. Set TEST_DATABASE_URL to run these tests.
//
// Company 1 fixture:
//   - product 1 (bundle, threshold 10): stock 5, three recent sales of
//     qty 10 — must alert
//   - product 2 (bundle): stock 5 but only a 40-day-old sale — must not
//     alert despite being below threshold
//   - product 3 (oversize, no threshold row): stock 1, recent sale —
//     must not alert
//   - product 4 (standard, threshold 20): stock 50, recent sale — above
//     threshold, must not alert
//   - product 5 (standard): stock 15, recent sale of qty 2 — must alert
//   - product 1 also has stock in warehouse 9, which belongs to
//     company 2 — that row must not leak into company 1's alerts
//
// Company 2 owns product 6 (standard, stock 1, recent sale), which must
// never appear for company 1.
func setupStoreTestDB(t *testing.T) (*gorm.DB, alert.Store) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Company{},
		&model.Warehouse{},
		&model.Product{},
		&model.Supplier{},
		&model.ProductSupplier{},
		&model.Inventory{},
		&model.Sale{},
		&model.CategoryThreshold{},
	); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	err = db.Exec(`TRUNCATE companies, warehouses, products, suppliers,
		product_suppliers, inventories, sales, category_thresholds
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("Failed to truncate test tables: %v", err)
	}

	now := time.Now()
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-40 * 24 * time.Hour)
	price := decimal.NewFromInt(10)

	seed := []any{
		&[]model.Company{
			{ID: 1, Name: "Acme"},
			{ID: 2, Name: "Globex"},
		},
		&[]model.Warehouse{
			{ID: 1, CompanyID: 1, Name: "Main Warehouse"},
			{ID: 9, CompanyID: 2, Name: "Remote Warehouse"},
		},
		&[]model.CategoryThreshold{
			{Category: model.CategoryBundle, Threshold: 10},
			{Category: model.CategoryStandard, Threshold: 20},
		},
		&[]model.Product{
			{ID: 1, CompanyID: 1, Name: "Gift Box", SKU: "BND-1", Price: price, Category: model.CategoryBundle},
			{ID: 2, CompanyID: 1, Name: "Stale Box", SKU: "BND-2", Price: price, Category: model.CategoryBundle},
			{ID: 3, CompanyID: 1, Name: "Crate", SKU: "OVR-3", Price: price, Category: "oversize"},
			{ID: 4, CompanyID: 1, Name: "Widget", SKU: "STD-4", Price: price, Category: model.CategoryStandard},
			{ID: 5, CompanyID: 1, Name: "Gadget", SKU: "STD-5", Price: price, Category: model.CategoryStandard},
			{ID: 6, CompanyID: 2, Name: "Foreign", SKU: "STD-6", Price: price, Category: model.CategoryStandard},
		},
		&[]model.Inventory{
			{ProductID: 1, WarehouseID: 1, Quantity: 5},
			{ProductID: 1, WarehouseID: 9, Quantity: 1},
			{ProductID: 2, WarehouseID: 1, Quantity: 5},
			{ProductID: 3, WarehouseID: 1, Quantity: 1},
			{ProductID: 4, WarehouseID: 1, Quantity: 50},
			{ProductID: 5, WarehouseID: 1, Quantity: 15},
			{ProductID: 6, WarehouseID: 9, Quantity: 1},
		},
		&[]model.Sale{
			{ProductID: 1, WarehouseID: 1, Quantity: 10, SaleDate: recent},
			{ProductID: 1, WarehouseID: 1, Quantity: 10, SaleDate: recent},
			{ProductID: 1, WarehouseID: 1, Quantity: 10, SaleDate: recent},
			{ProductID: 2, WarehouseID: 1, Quantity: 3, SaleDate: stale},
			{ProductID: 3, WarehouseID: 1, Quantity: 6, SaleDate: recent},
			{ProductID: 4, WarehouseID: 1, Quantity: 1, SaleDate: recent},
			{ProductID: 5, WarehouseID: 1, Quantity: 2, SaleDate: recent},
			{ProductID: 6, WarehouseID: 9, Quantity: 1, SaleDate: recent},
		},
		&[]model.Supplier{
			{ID: 1, Name: "Alpha Supply", ContactInfo: "orders@alpha.example"},
			{ID: 2, Name: "Beta Supply", ContactInfo: "orders@beta.example"},
		},
		&[]model.ProductSupplier{
			{ProductID: 1, SupplierID: 2},
			{ProductID: 1, SupplierID: 1},
		},
	}
	for _, rows := range seed {
		if err := db.Create(rows).Error; err != nil {
			t.Fatalf("Failed to seed test data: %v", err)
		}
	}

	return db, alert.NewStore(db)
}

func windowStart() time.Time {
	return time.Now().Add(-30 * 24 * time.Hour)
}

func TestStore_CandidateRows_Invariants(t *testing.T) {
	_, store := setupStoreTestDB(t)

	rows, err := store.CandidateRows(context.Background(), 1, windowStart())
	if err != nil {
		t.Fatalf("CandidateRows failed: %v", err)
	}

	byProduct := make(map[uint]alert.CandidateRow, len(rows))
	for _, row := range rows {
		if row.CurrentStock > row.Threshold {
			t.Errorf("row violates stock <= threshold: %+v", row)
		}
		if row.WarehouseID == 9 {
			t.Errorf("row leaked a warehouse of another company: %+v", row)
		}
		byProduct[row.ProductID] = row
	}

	if len(rows) != 2 {
		t.Fatalf("expected exactly 2 candidate rows, got %d: %+v", len(rows), rows)
	}
	if row, ok := byProduct[1]; !ok || row.CurrentStock != 5 || row.Threshold != 10 {
		t.Errorf("expected product 1 with stock 5 / threshold 10, got %+v", byProduct[1])
	}
	if row, ok := byProduct[5]; !ok || row.CurrentStock != 15 || row.Threshold != 20 {
		t.Errorf("expected product 5 with stock 15 / threshold 20, got %+v", byProduct[5])
	}

	// Below threshold but no sale inside the window.
	if _, ok := byProduct[2]; ok {
		t.Error("product with zero recent sales must not alert even below threshold")
	}
	// Category without a threshold row yields nothing, silently.
	if _, ok := byProduct[3]; ok {
		t.Error("category without a threshold row must never alert")
	}
	// Stock above threshold.
	if _, ok := byProduct[4]; ok {
		t.Error("stock above threshold must not alert")
	}
	// Another company's product.
	if _, ok := byProduct[6]; ok {
		t.Error("another company's product must not appear")
	}
}

func TestStore_SalesTotals(t *testing.T) {
	_, store := setupStoreTestDB(t)

	totals, err := store.SalesTotals(context.Background(), 1, windowStart())
	if err != nil {
		t.Fatalf("SalesTotals failed: %v", err)
	}

	if totals[1] != 30 {
		t.Errorf("expected product 1 total 30, got %d", totals[1])
	}
	if totals[5] != 2 {
		t.Errorf("expected product 5 total 2, got %d", totals[5])
	}
	if _, ok := totals[2]; ok {
		t.Error("sales outside the window must not be counted")
	}
	if _, ok := totals[6]; ok {
		t.Error("another company's sales must not be counted")
	}
}

func TestStore_FirstSupplier(t *testing.T) {
	_, store := setupStoreTestDB(t)

	ref, err := store.FirstSupplier(context.Background(), 1)
	if err != nil {
		t.Fatalf("FirstSupplier failed: %v", err)
	}
	if ref == nil {
		t.Fatal("expected a supplier for product 1")
	}
	// Two links exist; the lowest supplier id wins.
	if ref.ID != 1 || ref.Name != "Alpha Supply" {
		t.Errorf("expected supplier 1 (Alpha Supply), got %+v", ref)
	}

	none, err := store.FirstSupplier(context.Background(), 5)
	if err != nil {
		t.Fatalf("FirstSupplier failed: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil supplier for unlinked product, got %+v", none)
	}
}

func TestStore_CompanyExists(t *testing.T) {
	_, store := setupStoreTestDB(t)

	exists, err := store.CompanyExists(context.Background(), 1)
	if err != nil {
		t.Fatalf("CompanyExists failed: %v", err)
	}
	if !exists {
		t.Error("expected company 1 to exist")
	}

	exists, err = store.CompanyExists(context.Background(), 999)
	if err != nil {
		t.Fatalf("CompanyExists failed: %v", err)
	}
	if exists {
		t.Error("expected company 999 to be unknown")
	}
}

// Full path through the real store: the seeded bundle product projects
// 5 days until stockout and carries its lowest-id supplier.
func TestService_LowStockAlerts_LiveStore(t *testing.T) {
	_, store := setupStoreTestDB(t)
	svc := alert.NewService(store, 30)

	report, err := svc.LowStockAlerts(context.Background(), 1)
	if err != nil {
		t.Fatalf("LowStockAlerts failed: %v", err)
	}
	if report.TotalAlerts != 2 {
		t.Fatalf("expected 2 alerts, got %d: %+v", report.TotalAlerts, report.Alerts)
	}

	var giftBox *alert.Alert
	for i := range report.Alerts {
		if report.Alerts[i].ProductID == 1 {
			giftBox = &report.Alerts[i]
		}
	}
	if giftBox == nil {
		t.Fatalf("expected an alert for product 1, got %+v", report.Alerts)
	}
	if giftBox.DaysUntilStockout == nil || *giftBox.DaysUntilStockout != 5 {
		t.Errorf("expected days_until_stockout 5, got %v", giftBox.DaysUntilStockout)
	}
	if giftBox.Supplier == nil || giftBox.Supplier.ID != 1 {
		t.Errorf("expected supplier 1 attached, got %+v", giftBox.Supplier)
	}
	if giftBox.WarehouseName != "Main Warehouse" {
		t.Errorf("expected warehouse name from the join, got %q", giftBox.WarehouseName)
	}
}
