package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/application/client/usecases"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type ClientHandler struct {
	createUC *usecases.CreateClientUseCase
	getUC    *usecases.GetClientUseCase
	listUC   *usecases.ListClientsUseCase
	updateUC *usecases.UpdateClientUseCase
	deleteUC *usecases.DeleteClientUseCase
	logger   logger.Interface
}

func NewClientHandler(
	createUC *usecases.CreateClientUseCase,
	getUC *usecases.GetClientUseCase,
	listUC *usecases.ListClientsUseCase,
	updateUC *usecases.UpdateClientUseCase,
	deleteUC *usecases.DeleteClientUseCase,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
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

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
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

func (h *ClientHandler) List(c *gin.Context) {
	filter := utils.ParseListFilter(c)

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Clients, result.Total, filter.Page, filter.Limit())
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateClientRequest
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

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
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
