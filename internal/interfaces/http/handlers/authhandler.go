// Package handlers exposes the HTTP API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/auth/dto"
	"github.com/venda-inc/venda/internal/application/auth/usecases"
	"github.com/venda-inc/venda/internal/shared/constants"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type AuthHandler struct {
	loginUC  *usecases.LoginUseCase
	logoutUC *usecases.LogoutUseCase
	logger   logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		logoutUC: logoutUC,
		logger:   logger,
	}
}

// Login handles POST /login. The response is the flat session payload the POS
// clients persist verbatim, not the standard envelope.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	roles := make([]dto.RoleResponse, len(result.Roles))
	for i, r := range result.Roles {
		roles[i] = dto.RoleResponse{ID: r.ID, Name: r.Name}
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:          result.User.ID,
		Nombre:      result.User.Name,
		Email:       result.User.Email,
		Roles:       roles,
		Token:       result.Token,
		Message:     "login successful",
		Permissions: result.Permissions,
	})
}

// Logout handles POST /logout for the authenticated session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}
