package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/alert"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AlertHandler serves low-stock alert queries.
type AlertHandler struct {
	svc *alert.Service
}

// NewAlertHandler returns a handler backed by the given alert service.
func NewAlertHandler(svc *alert.Service) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// GetLowStockAlerts handles retrieving low-stock alerts for a company
func (h *AlertHandler) GetLowStockAlerts(c echo.Context) error {
	log := logger.FromContext(c)

	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 32)
	if err != nil {
		log.Warn("Invalid company id", zap.String("company_id", c.Param("company_id")))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid company id",
		})
	}

	log.Info("Computing low-stock alerts", zap.Uint64("company_id", companyID))

	report, err := h.svc.LowStockAlerts(c.Request().Context(), uint(companyID))
	if err != nil {
		log.Error("Failed to compute low-stock alerts",
			zap.Uint64("company_id", companyID),
			zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordAlertComputation(len(report.Alerts))
	log.Info("Low-stock alerts computed",
		zap.Uint64("company_id", companyID),
		zap.Int("total_alerts", report.TotalAlerts))
	return c.JSON(http.StatusOK, report)
}
