package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/product"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation requests.
// Pointer fields let the service distinguish absent fields from zero
// values when reporting which required field is missing.
type ProductRequest struct {
	Name            *string `json:"name"`
	SKU             *string `json:"sku"`
	Price           *string `json:"price"`
	WarehouseID     *uint   `json:"warehouse_id"`
	InitialQuantity *int    `json:"initial_quantity"`
	Category        *string `json:"category"`
}

// ProductHandler serves product master-data requests.
type ProductHandler struct {
	svc *product.Service
}

// NewProductHandler returns a handler backed by the given product service.
func NewProductHandler(svc *product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// CreateProduct handles creating a new product with its initial stock
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	productID, err := h.svc.Create(c.Request().Context(), &product.CreateInput{
		Name:            req.Name,
		SKU:             req.SKU,
		Price:           req.Price,
		WarehouseID:     req.WarehouseID,
		InitialQuantity: req.InitialQuantity,
		Category:        req.Category,
	})
	if err != nil {
		log.Error("Failed to create product", zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created successfully",
		zap.String("product_id", strconv.FormatUint(uint64(productID), 10)))
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Product created",
		"product_id": productID,
	})
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid product id",
		})
	}

	p, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		log.Warn("Product lookup failed",
			zap.Uint64("product_id", id),
			zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordProductOperation("get")
	return c.JSON(http.StatusOK, p)
}

// ListProducts handles retrieving all products with optional filtering
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	category := c.QueryParam("category")
	products, err := h.svc.List(c.Request().Context(), category)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}
