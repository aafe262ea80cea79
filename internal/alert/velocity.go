package alert

// AverageDailySales estimates demand as a fixed-divisor mean over the
// trailing window. A product that sold once near the window's edge is
// still averaged over the full window; there is no smoothing.
func AverageDailySales(totalQuantity int64, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(totalQuantity) / float64(windowDays)
}
