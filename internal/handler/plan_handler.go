package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/internal/service"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
	"github.com/hoos-helper/advisor-api/pkg/response"
)

type plannerService interface {
	Validate(ctx context.Context, plan models.StudentPlan) (*models.ValidationResult, error)
	Generate(ctx context.Context, req service.GeneratePlanRequest) (*service.GeneratedPlan, error)
	Export(ctx context.Context, plan models.StudentPlan) ([]byte, error)
}

// PlanHandler exposes plan validation, generation and export.
type PlanHandler struct {
	service plannerService
	metrics *service.MetricsService
}

// NewPlanHandler constructs a plan handler. metrics may be nil.
func NewPlanHandler(svc plannerService, metrics *service.MetricsService) *PlanHandler {
	return &PlanHandler{service: svc, metrics: metrics}
}

// Validate godoc
// @Summary Validate a course plan
// @Description Checks a multi-year plan for prerequisite violations and credit-load advisories
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body models.StudentPlan true "Plan payload"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} response.Envelope
// @Router /plan/validate [post]
func (h *PlanHandler) Validate(c *gin.Context) {
	var plan models.StudentPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}

	result, err := h.service.Validate(c.Request.Context(), plan)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObservePlanFindings(len(result.Errors), len(result.Warnings))
	}

	// The validation contract predates the envelope: clients consume
	// the result object at the top level.
	c.JSON(http.StatusOK, result)
}

// Generate godoc
// @Summary Generate a course plan
// @Description Asks the advising model for a plan and validates it
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body service.GeneratePlanRequest true "Generation payload"
// @Success 200 {object} response.Envelope
// @Router /plan/generate [post]
func (h *PlanHandler) Generate(c *gin.Context) {
	var req service.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}

	generated, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, generated, nil)
}

// Export godoc
// @Summary Export a course plan as PDF
// @Tags Plans
// @Accept json
// @Produce application/pdf
// @Param payload body models.StudentPlan true "Plan payload"
// @Success 200 {file} binary
// @Router /plan/export [post]
func (h *PlanHandler) Export(c *gin.Context) {
	var plan models.StudentPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}

	payload, err := h.service.Export(c.Request.Context(), plan)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="course-plan.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
