package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "surface_rejuvenators/internal/adapter/http/dto/request"
	response "surface_rejuvenators/internal/adapter/http/dto/response"
	"surface_rejuvenators/internal/domain/catalog"
	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/domain/quote"
	"surface_rejuvenators/pkg"
)

var errInvalidCatalogQuery = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_TYPE", "customer_type must be Residential or Commercial", http.StatusBadRequest)

// CatalogHandler serves the quote wizard's browse steps and the price
// preview. The catalog is immutable reference data, so there is no use case
// behind this handler.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	ct, ok := customerTypeQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories(ct)})
}

func (h *CatalogHandler) ListSubCategories(c *gin.Context) {
	ct, ok := customerTypeQuery(c)
	if !ok {
		return
	}
	category := strings.TrimSpace(c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"sub_categories": catalog.SubCategories(ct, category)})
}

// ListServices filters the catalog by customer type and the optional
// category/sub_category query params, mirroring the wizard's drill-down.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ct, ok := customerTypeQuery(c)
	if !ok {
		return
	}
	category := strings.TrimSpace(c.Query("category"))
	subCategory := strings.TrimSpace(c.Query("sub_category"))
	services := catalog.ServicesFor(ct, category, subCategory)
	c.JSON(http.StatusOK, response.FromServices(services))
}

// PricePreview runs one full item configuration through the wizard
// validations and returns the priced line item without persisting anything.
func (h *CatalogHandler) PricePreview(c *gin.Context) {
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ITEM_PAYLOAD", "Invalid item payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := buildQuoteItem(payload)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteItem(item))
}

func customerTypeQuery(c *gin.Context) (entities.CustomerType, bool) {
	ct := entities.CustomerType(strings.TrimSpace(c.Query("customer_type")))
	if !ct.IsValid() {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return "", false
	}
	return ct, true
}

// buildQuoteItem turns an item payload into a validated, priced QuoteItem.
// Shared by the price preview and every job endpoint that accepts items.
func buildQuoteItem(payload request.QuoteItemRequest) (entities.QuoteItem, error) {
	return quote.BuildItem(
		catalog.Services(),
		payload.ResolveCustomerType(),
		strings.TrimSpace(payload.ServiceID),
		payload.Quantity,
		payload.TierIDs,
		payload.AddOnIDs,
		payload.Notes,
	)
}

func mapBuilderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, quote.ErrInvalidCustomerType):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_TYPE", "customer_type must be Residential or Commercial", http.StatusBadRequest)
	case errors.Is(err, quote.ErrUnknownCategory), errors.Is(err, quote.ErrUnknownSubCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Category not available for this customer type", http.StatusBadRequest)
	case errors.Is(err, quote.ErrServiceNotOffered), errors.Is(err, catalog.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_OFFERED", "Service not offered for this selection", http.StatusBadRequest)
	case errors.Is(err, quote.ErrTierRequired):
		return pkg.NewDomainErrorSimple("TIER_REQUIRED", "Select at least one tier for this service", http.StatusUnprocessableEntity)
	case errors.Is(err, catalog.ErrUnknownTier), errors.Is(err, catalog.ErrUnknownAddOn):
		return pkg.NewDomainErrorSimple("UNKNOWN_SELECTION", "Selected tier or add-on does not exist on this service", http.StatusUnprocessableEntity)
	case errors.Is(err, quote.ErrWrongStep):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_PAYLOAD", "Invalid item payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
