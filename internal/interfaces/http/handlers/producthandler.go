package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/product/dto"
	"github.com/venda-inc/venda/internal/application/product/usecases"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type ProductHandler struct {
	createUC *usecases.CreateProductUseCase
	getUC    *usecases.GetProductUseCase
	listUC   *usecases.ListProductsUseCase
	updateUC *usecases.UpdateProductUseCase
	deleteUC *usecases.DeleteProductUseCase
	logger   logger.Interface
}

func NewProductHandler(
	createUC *usecases.CreateProductUseCase,
	getUC *usecases.GetProductUseCase,
	listUC *usecases.ListProductsUseCase,
	updateUC *usecases.UpdateProductUseCase,
	deleteUC *usecases.DeleteProductUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, resp)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *ProductHandler) List(c *gin.Context) {
	filter := utils.ParseListFilter(c)

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Products, result.Total, filter.Page, filter.Limit())
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
