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

type WarehouseService interface {
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	CreateWarehouse(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error
}

type WarehouseHandler struct {
	svc WarehouseService
}

func NewWarehouseHandler(svc WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{
		svc: svc,
	}
}

// HandleListWarehouses godoc
// @Summary      List all warehouses
// @Tags         warehouses
// @Produce      json
// @Success      200  {object}  []domain.Warehouse
// @Failure      500  {object}  response.Err
// @Router       /warehouses [get]
func (h *WarehouseHandler) HandleListWarehouses(ctx *gin.Context) {
	warehouses, err := h.svc.ListWarehouses(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, warehouses)
}

// HandleCreateWarehouse godoc
// @Summary      Create a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateWarehouseRequest  true  "Warehouse to create"
// @Success      201      {object}  domain.Warehouse
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /warehouses [post]
func (h *WarehouseHandler) HandleCreateWarehouse(ctx *gin.Context) {
	req := request.CreateWarehouseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateWarehouse(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrWarehouseExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteWarehouse godoc
// @Summary      Delete a warehouse and its SKU assignments
// @Tags         warehouses
// @Produce      json
// @Param        warehouseID  path      string  true  "Warehouse ID"
// @Success      204          {object}  nil
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /warehouses/{warehouseID} [delete]
func (h *WarehouseHandler) HandleDeleteWarehouse(ctx *gin.Context) {
	id := ctx.Param("warehouseID")

	if err := h.svc.DeleteWarehouse(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWarehouseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("warehouse", "warehouseID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
