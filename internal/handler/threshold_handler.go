package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ThresholdRequest defines the structure for threshold upsert requests
type ThresholdRequest struct {
	Threshold *int `json:"threshold"`
}

// ThresholdHandler serves the per-category low-stock threshold
// configuration. A category without a threshold row never alerts.
type ThresholdHandler struct {
	db *gorm.DB
}

// NewThresholdHandler returns a handler using the given GORM handle.
func NewThresholdHandler(db *gorm.DB) *ThresholdHandler {
	return &ThresholdHandler{db: db}
}

// ListThresholds retrieves all configured category thresholds
func (h *ThresholdHandler) ListThresholds(c echo.Context) error {
	log := logger.FromContext(c)

	var thresholds []model.CategoryThreshold
	result := h.db.WithContext(c.Request().Context()).Order("category").Find(&thresholds)
	if result.Error != nil {
		log.Error("Failed to retrieve thresholds", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve thresholds",
		})
	}

	return c.JSON(http.StatusOK, thresholds)
}

// UpsertThreshold sets the low-stock threshold for a category
func (h *ThresholdHandler) UpsertThreshold(c echo.Context) error {
	log := logger.FromContext(c)
	category := c.Param("category")

	var req ThresholdRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Threshold == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required field: threshold",
		})
	}

	threshold := model.CategoryThreshold{
		Category:  category,
		Threshold: *req.Threshold,
	}
	result := h.db.WithContext(c.Request().Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"threshold"}),
		}).
		Create(&threshold)
	if result.Error != nil {
		log.Error("Failed to save threshold",
			zap.String("category", category),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to save threshold",
		})
	}

	log.Info("Threshold saved",
		zap.String("category", category),
		zap.Int("threshold", *req.Threshold))
	return c.JSON(http.StatusOK, threshold)
}
