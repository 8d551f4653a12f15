package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/sale/dto"
	"github.com/venda-inc/venda/internal/application/sale/usecases"
	"github.com/venda-inc/venda/internal/shared/constants"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type SaleHandler struct {
	createUC *usecases.CreateSaleUseCase
	getUC    *usecases.GetSaleUseCase
	listUC   *usecases.ListSalesUseCase
	updateUC *usecases.UpdateSaleUseCase
	deleteUC *usecases.DeleteSaleUseCase
	logger   logger.Interface
}

func NewSaleHandler(
	createUC *usecases.CreateSaleUseCase,
	getUC *usecases.GetSaleUseCase,
	listUC *usecases.ListSalesUseCase,
	updateUC *usecases.UpdateSaleUseCase,
	deleteUC *usecases.DeleteSaleUseCase,
	logger logger.Interface,
) *SaleHandler {
	return &SaleHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, resp)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
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

func (h *SaleHandler) List(c *gin.Context) {
	filter := utils.ParseListFilter(c)

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Sales, result.Total, filter.Page, filter.Limit())
}

func (h *SaleHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSaleRequest
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

func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
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
