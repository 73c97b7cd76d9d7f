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

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTIONS", "Invalid selections payload", http.StatusBadRequest)

// PublicQuoteHandler serves the customer-facing quote page: view, live
// price preview, and approval. These endpoints are reachable without any
// admin context; the job id in the shared link is the only credential.

type PublicQuoteHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewPublicQuoteHandler(uc usecase.IApprovalUseCase) *PublicQuoteHandler {
	return &PublicQuoteHandler{usecase: uc}
}

func (h *PublicQuoteHandler) GetQuote(c *gin.Context) {
	job, err := h.usecase.PublicQuote(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPublicQuote(job))
}

// PreviewQuote recomputes the running total for the submitted selections
// without touching the job. The admin preview mode uses the same endpoint.
func (h *PublicQuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.SelectionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	bd, err := h.usecase.Preview(c.Request.Context(), c.Param("job_id"), payload.ToSelections())
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(bd))
}

func (h *PublicQuoteHandler) ApproveQuote(c *gin.Context) {
	var payload request.ApproveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Approve(c.Request.Context(), c.Param("job_id"), payload.ToSelections(), payload.Signature)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPublicQuote(job))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSelectionsIncomplete):
		return pkg.NewDomainErrorSimple("SELECTIONS_INCOMPLETE", "Select an option for every service", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSignatureRequired):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUIRED", "Signature required to approve", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
