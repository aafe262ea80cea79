package alert

// DaysUntilStockout projects the days before stock reaches zero given the
// average daily demand. Returns nil when demand is zero: unknown/never,
// not infinite. Division truncates toward zero, so zero stock with
// positive demand yields 0 (already stocked out).
func DaysUntilStockout(currentStock int, avgDailySales float64) *int {
	if avgDailySales <= 0 {
		return nil
	}
	days := int(float64(currentStock) / avgDailySales)
	return &days
}
