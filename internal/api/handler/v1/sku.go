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

type SkuService interface {
	ListSkus(ctx context.Context) ([]domain.Sku, error)
	CreateSku(ctx context.Context, sku domain.Sku) (domain.Sku, error)
	BulkAssignWarehouses(ctx context.Context, batch []domain.SkuAssignment) error
}

type SkuHandler struct {
	svc SkuService
}

func NewSkuHandler(svc SkuService) *SkuHandler {
	return &SkuHandler{
		svc: svc,
	}
}

// HandleListSkus godoc
// @Summary      List all SKUs with their warehouse assignments
// @Tags         skus
// @Produce      json
// @Success      200  {object}  []domain.Sku
// @Failure      500  {object}  response.Err
// @Router       /skus [get]
func (h *SkuHandler) HandleListSkus(ctx *gin.Context) {
	skus, err := h.svc.ListSkus(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, skus)
}

// HandleCreateSku godoc
// @Summary      Create a SKU
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSkuRequest  true  "SKU to create"
// @Success      201      {object}  domain.Sku
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /skus [post]
func (h *SkuHandler) HandleCreateSku(ctx *gin.Context) {
	req := request.CreateSkuRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSku(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrSkuExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleBulkAssignWarehouses godoc
// @Summary      Replace the warehouse sets of the given SKUs in one transaction
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkAssignWarehousesRequest  true  "Assignments to apply"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /skus/bulk-assign-warehouses [post]
func (h *SkuHandler) HandleBulkAssignWarehouses(ctx *gin.Context) {
	req := request.BulkAssignWarehousesRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.BulkAssignWarehouses(ctx.Request.Context(), req.ToDomain()); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "assignments saved"})
}
