package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supplyline/planning-api/internal/api/handler/v1/response"
	"github.com/supplyline/planning-api/internal/domain"
)

type DashboardService interface {
	GetStats(ctx context.Context) (domain.DashboardStats, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Dashboard headline stats and the recent-activity feed
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Failure      500  {object}  response.Err
// @Router       /dashboard [get]
func (h *DashboardHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.GetStats(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
