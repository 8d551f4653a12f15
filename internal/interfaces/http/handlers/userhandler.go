package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/user/dto"
	"github.com/venda-inc/venda/internal/application/user/usecases"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type UserHandler struct {
	createUC    *usecases.CreateUserUseCase
	getUC       *usecases.GetUserUseCase
	listUC      *usecases.ListUsersUseCase
	updateUC    *usecases.UpdateUserUseCase
	deleteUC    *usecases.DeleteUserUseCase
	listRolesUC *usecases.ListRolesUseCase
	logger      logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	listRolesUC *usecases.ListRolesUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listRolesUC: listRolesUC,
		logger:      logger,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
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

func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
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

func (h *UserHandler) List(c *gin.Context) {
	filter := utils.ParseListFilter(c)

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Users, result.Total, filter.Page, filter.Limit())
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
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

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
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

// ListRoles handles GET /roles for assignment pickers.
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.listRolesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", roles)
}
