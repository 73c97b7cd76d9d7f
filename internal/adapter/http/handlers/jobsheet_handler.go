package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "surface_rejuvenators/internal/adapter/http/dto/request"
	response "surface_rejuvenators/internal/adapter/http/dto/response"
	"surface_rejuvenators/internal/usecase"
	"surface_rejuvenators/pkg"
)

var errInvalidSheetPayload = pkg.NewDomainErrorSimple("INVALID_SHEET_PAYLOAD", "Invalid job sheet payload", http.StatusBadRequest)

// JobSheetHandler handles the technician endpoints: plan generation, step
// progress, sheet edits, completion, and delays.

type JobSheetHandler struct {
	usecase usecase.IJobSheetUseCase
}

func NewJobSheetHandler(uc usecase.IJobSheetUseCase) *JobSheetHandler {
	return &JobSheetHandler{usecase: uc}
}

// GeneratePlan asks the AI planner for a step-by-step plan. A job that
// already has one is rejected; generation failures are retriable.
func (h *JobSheetHandler) GeneratePlan(c *gin.Context) {
	job, err := h.usecase.GeneratePlan(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobSheetHandler) UpdateStep(c *gin.Context) {
	stepIndex, err := strconv.Atoi(c.Param("step_index"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STEP", "Invalid plan step", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSheetPayload.HTTPStatus, errInvalidSheetPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStep(c.Request.Context(), c.Param("job_id"), stepIndex, payload.Completed, payload.IngredientUsage)
	if err != nil {
		appErr := mapJobSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobSheetHandler) UpdateSheet(c *gin.Context) {
	var payload request.UpdateSheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSheetPayload.HTTPStatus, errInvalidSheetPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateSheet(c.Request.Context(), c.Param("job_id"), payload.Notes, payload.BeforePhotos, payload.AfterPhotos)
	if err != nil {
		appErr := mapJobSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CompleteJob records the payment method, consumes the chemicals used, and
// marks the job completed.
func (h *JobSheetHandler) CompleteJob(c *gin.Context) {
	var payload request.CompleteJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSheetPayload.HTTPStatus, errInvalidSheetPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CompleteJob(c.Request.Context(), c.Param("job_id"), payload.PaymentMethod)
	if err != nil {
		appErr := mapJobSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobSheetHandler) MarkDelayed(c *gin.Context) {
	var payload request.DelayJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSheetPayload.HTTPStatus, errInvalidSheetPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.MarkDelayed(c.Request.Context(), c.Param("job_id"), payload.Reason)
	if err != nil {
		appErr := mapJobSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobSheetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrDelayReasonRequired),
		errors.Is(err, usecase.ErrPaymentMethodMissing), errors.Is(err, usecase.ErrInvalidStepIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanExists):
		return pkg.NewDomainErrorSimple("PLAN_EXISTS", "Job already has a plan", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPlan):
		return pkg.NewDomainErrorSimple("NO_PLAN", "Job has no plan", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlannerNotConfigured):
		return pkg.NewDomainErrorSimple("PLANNER_NOT_CONFIGURED", "Plan generation is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPlanGeneration):
		return pkg.NewDomainErrorSimple("PLAN_GENERATION_FAILED", "Failed to generate job plan, try again", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
