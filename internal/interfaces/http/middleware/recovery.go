package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	sharedErrors "github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

// Recovery converts panics into 500 responses. A panic caused by the client
// dropping the connection mid-request is logged and aborted without a body,
// since nobody is left to read it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if isClientDisconnect(recovered) {
			logger.Warn("client disconnected during request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", recovered)
			c.Abort()
			return
		}

		logger.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"headers", maskedHeaders(c.Request.Header),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// maskedHeaders flattens request headers for logging with credentials removed.
func maskedHeaders(header http.Header) []string {
	out := make([]string, 0, len(header))
	for name, values := range header {
		if strings.EqualFold(name, "Authorization") {
			out = append(out, name+": *")
			continue
		}
		out = append(out, name+": "+strings.Join(values, ", "))
	}
	return out
}

func isClientDisconnect(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer") ||
		strings.Contains(msg, "connection refused")
}

// ErrorHandler renders errors attached to the gin context as the standard
// error envelope. Known application errors log at warn with their type;
// anything unclassified is a server fault and logs at error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if appErr := sharedErrors.GetAppError(err); appErr != nil && appErr.Code < http.StatusInternalServerError {
			logger.Warn("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"type", string(appErr.Type),
				"error", appErr.Message)
		} else {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err)
		}

		if !c.Writer.Written() {
			utils.ErrorResponseWithError(c, err)
		}
	}
}
