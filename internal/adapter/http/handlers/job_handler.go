package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "surface_rejuvenators/internal/adapter/http/dto/request"
	response "surface_rejuvenators/internal/adapter/http/dto/response"
	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase"
	"surface_rejuvenators/pkg"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_PAYLOAD", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles the admin-side quote and job endpoints.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateQuote saves a finished estimate as a new job. Every line item is
// rebuilt through the wizard validations before anything is stored.
func (h *JobHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	items := make([]entities.QuoteItem, 0, len(payload.Items))
	for _, itemPayload := range payload.Items {
		item, err := buildQuoteItem(itemPayload)
		if err != nil {
			appErr := mapBuilderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		items = append(items, item)
	}

	job, err := h.usecase.CreateQuote(c.Request.Context(), payload.Customer.ToEntity(), items)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("job_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// SendQuote moves a quoted job to awaiting approval and returns it with the
// shareable public link set.
func (h *JobHandler) SendQuote(c *gin.Context) {
	job, err := h.usecase.SendQuote(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AddItem(c *gin.Context) {
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	item, err := buildQuoteItem(payload)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.AddItem(c.Request.Context(), c.Param("job_id"), item)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReplaceItem rebuilds an edited item and swaps it in at its original
// position, keeping the item id stable.
func (h *JobHandler) ReplaceItem(c *gin.Context) {
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	item, err := buildQuoteItem(payload)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.ReplaceItem(c.Request.Context(), c.Param("job_id"), c.Param("item_id"), item)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) RemoveItem(c *gin.Context) {
	job, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("job_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrNoQuoteItems), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Quote item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotSendable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SENDABLE", "Only a quoted job can be sent for approval", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
