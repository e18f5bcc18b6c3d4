package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/supplyline/planning-api/internal/api/handler/v1/response"
	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/service"
)

type SalesService interface {
	History(ctx context.Context) (domain.SalesHistory, error)
	Forecast(ctx context.Context, sku string, window int) (domain.SalesForecast, error)
}

type SalesHandler struct {
	svc SalesService
}

func NewSalesHandler(svc SalesService) *SalesHandler {
	return &SalesHandler{
		svc: svc,
	}
}

// HandleGetHistory godoc
// @Summary      Aggregated monthly sales history
// @Tags         sales
// @Produce      json
// @Success      200  {object}  domain.SalesHistory
// @Failure      500  {object}  response.Err
// @Router       /sales-history [get]
func (h *SalesHandler) HandleGetHistory(ctx *gin.Context) {
	history, err := h.svc.History(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// HandleGetForecast godoc
// @Summary      Moving-average forecast over the monthly totals
// @Tags         sales
// @Produce      json
// @Param        sku     query     string  false  "Limit to one SKU; empty means all"
// @Param        window  query     int     false  "Moving-average window"  default(3)
// @Success      200     {object}  domain.SalesForecast
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /sales-history/forecast [get]
func (h *SalesHandler) HandleGetForecast(ctx *gin.Context) {
	sku := ctx.Query("sku")

	window := 0
	if raw := ctx.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid window %q", raw)))
			return
		}
		window = parsed
	}

	forecast, err := h.svc.Forecast(ctx.Request.Context(), sku, window)
	if err != nil {
		if errors.Is(err, service.ErrNoSalesData) {
			response.RenderErr(ctx, response.ErrNotFound("sales records", "sku", sku))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, forecast)
}
