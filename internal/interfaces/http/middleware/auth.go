package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/venda-inc/venda/internal/application/auth/usecases"
	"github.com/venda-inc/venda/internal/infrastructure/auth"
	"github.com/venda-inc/venda/internal/shared/constants"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

// AuthMiddleware authenticates requests with a Bearer token and keeps the
// backing session alive: every authenticated request records activity, which
// pushes the session expiry forward.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	touchUC    *authUsecases.TouchSessionUseCase
	logger     logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	touchUC *authUsecases.TouchSessionUseCase,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		touchUC:    touchUC,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		// A valid token is not enough: the session row must still exist.
		// Touching it records activity and pushes the expiry forward.
		_, err = m.touchUC.Execute(c.Request.Context(), authUsecases.TouchSessionCommand{
			SessionID: claims.SessionID,
		})
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil {
				utils.ErrorResponse(c, appErr.Code, appErr.Message)
			} else {
				utils.ErrorResponse(c, http.StatusUnauthorized, "session no longer valid")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}
