package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "surface_rejuvenators/internal/adapter/http/dto/request"
	response "surface_rejuvenators/internal/adapter/http/dto/response"
	"surface_rejuvenators/internal/usecase"
	"surface_rejuvenators/pkg"
)

// InventoryHandler handles stock listing, the low-stock report, and manual
// adjustments.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STOCK_PAYLOAD", "Invalid stock adjustment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("item_id"), payload.Delta)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInventoryID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
