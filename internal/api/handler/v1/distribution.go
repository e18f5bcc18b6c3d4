package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supplyline/planning-api/internal/api/handler/v1/request"
	"github.com/supplyline/planning-api/internal/api/handler/v1/response"
	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/service"
)

type DistributionService interface {
	ListPlans(ctx context.Context) ([]domain.DistributionPlan, error)
	CreatePlan(ctx context.Context, reference string) (domain.DistributionPlan, error)
	ExecutePlan(ctx context.Context, id string) error
}

type DistributionHandler struct {
	svc DistributionService
}

func NewDistributionHandler(svc DistributionService) *DistributionHandler {
	return &DistributionHandler{
		svc: svc,
	}
}

// HandleListPlans godoc
// @Summary      List distribution plans
// @Tags         distributions
// @Produce      json
// @Success      200  {object}  []domain.DistributionPlan
// @Failure      500  {object}  response.Err
// @Router       /distributions [get]
func (h *DistributionHandler) HandleListPlans(ctx *gin.Context) {
	plans, err := h.svc.ListPlans(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

// HandleCreatePlan godoc
// @Summary      Create a pending distribution plan
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateDistributionRequest  true  "Plan reference"
// @Success      201      {object}  domain.DistributionPlan
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /distributions [post]
func (h *DistributionHandler) HandleCreatePlan(ctx *gin.Context) {
	req := request.CreateDistributionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreatePlan(ctx.Request.Context(), req.Reference)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleExecutePlan godoc
// @Summary      Mark a pending plan as executed
// @Tags         distributions
// @Produce      json
// @Param        planID  path      string  true  "Plan ID"
// @Success      200     {object}  map[string]string
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /distributions/{planID}/execute [post]
func (h *DistributionHandler) HandleExecutePlan(ctx *gin.Context) {
	id := ctx.Param("planID")

	if err := h.svc.ExecutePlan(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDistributionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("distribution plan", "planID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "plan executed"})
}
