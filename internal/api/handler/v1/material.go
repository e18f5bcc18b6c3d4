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

type MaterialService interface {
	ListMaterials(ctx context.Context) ([]domain.Material, error)
	SaveMaterial(ctx context.Context, material domain.Material) (domain.Material, error)
	DeleteMaterial(ctx context.Context, productID string) error
	ImportMaterials(ctx context.Context, rows []service.MaterialRow, source string) (int, error)
}

type MaterialHandler struct {
	svc MaterialService
}

func NewMaterialHandler(svc MaterialService) *MaterialHandler {
	return &MaterialHandler{
		svc: svc,
	}
}

// HandleListMaterials godoc
// @Summary      List the material master
// @Tags         materials
// @Produce      json
// @Success      200  {object}  []domain.Material
// @Failure      500  {object}  response.Err
// @Router       /materials [get]
func (h *MaterialHandler) HandleListMaterials(ctx *gin.Context) {
	materials, err := h.svc.ListMaterials(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// HandleSaveMaterial godoc
// @Summary      Create or replace a material, keyed by product ID
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveMaterialRequest  true  "Material fields as strings"
// @Success      200      {object}  domain.Material
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /materials [post]
func (h *MaterialHandler) HandleSaveMaterial(ctx *gin.Context) {
	req := request.SaveMaterialRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	row := req.ToRow()
	saved, err := h.svc.SaveMaterial(ctx.Request.Context(), row.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleUpdateMaterial godoc
// @Summary      Update a material at its product ID
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        productID  path      string               true  "Product ID"
// @Param        request    body      request.SaveMaterialRequest  true  "Material fields as strings"
// @Success      200        {object}  domain.Material
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /materials/{productID} [put]
func (h *MaterialHandler) HandleUpdateMaterial(ctx *gin.Context) {
	req := request.SaveMaterialRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// The path owns the identity; the body may omit or disagree.
	req.ProductID = ctx.Param("productID")

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	row := req.ToRow()
	saved, err := h.svc.SaveMaterial(ctx.Request.Context(), row.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteMaterial godoc
// @Summary      Delete a material
// @Tags         materials
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      204        {object}  nil
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /materials/{productID} [delete]
func (h *MaterialHandler) HandleDeleteMaterial(ctx *gin.Context) {
	productID := ctx.Param("productID")

	if err := h.svc.DeleteMaterial(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("material", "productID", productID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleImportMaterials godoc
// @Summary      Import materials from an uploaded .xlsx or .csv file
// @Description  Validates every row before anything is saved. Any invalid
// @Description  row rejects the whole file; duplicate product IDs within
// @Description  the file keep the later row.
// @Tags         materials
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Spreadsheet with a header row"
// @Success      200   {object}  response.ImportResultResponse
// @Failure      400   {object}  response.Err
// @Failure      422   {object}  response.ImportRejectedResponse
// @Failure      500   {object}  response.Err
// @Router       /materials/import [post]
func (h *MaterialHandler) HandleImportMaterials(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer file.Close()

	rows, err := service.ParseMaterialFile(fileHeader.Filename, file)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	imported, err := h.svc.ImportMaterials(ctx.Request.Context(), rows, fileHeader.Filename)
	if err != nil {
		var invalid *service.ImportValidationError
		if errors.As(err, &invalid) {
			ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, response.NewImportRejected(invalid))
			return
		}
		if errors.Is(err, service.ErrEmptyImport) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ImportResultResponse{
		Imported: imported,
		Message:  "import complete",
	})
}
