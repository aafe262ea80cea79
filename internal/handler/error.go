package handler

import (
	"net/http"

	"inventory-service/internal/apperr"

	"github.com/labstack/echo/v4"
)

// writeError maps a service error to its HTTP response. Storage errors
// pass the underlying driver detail through in the body.
func writeError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case apperr.KindValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case apperr.KindStorage:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
