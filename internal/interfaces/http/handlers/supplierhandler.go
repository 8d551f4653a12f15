package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/supplier/dto"
	"github.com/venda-inc/venda/internal/application/supplier/usecases"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type SupplierHandler struct {
	createUC *usecases.CreateSupplierUseCase
	getUC    *usecases.GetSupplierUseCase
	listUC   *usecases.ListSuppliersUseCase
	updateUC *usecases.UpdateSupplierUseCase
	deleteUC *usecases.DeleteSupplierUseCase
	logger   logger.Interface
}

func NewSupplierHandler(
	createUC *usecases.CreateSupplierUseCase,
	getUC *usecases.GetSupplierUseCase,
	listUC *usecases.ListSuppliersUseCase,
	updateUC *usecases.UpdateSupplierUseCase,
	deleteUC *usecases.DeleteSupplierUseCase,
	logger logger.Interface,
) *SupplierHandler {
	return &SupplierHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
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

func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "supplier")
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

func (h *SupplierHandler) List(c *gin.Context) {
	filter := utils.ParseListFilter(c)

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Suppliers, result.Total, filter.Page, filter.Limit())
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "supplier")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSupplierRequest
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

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "supplier")
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
