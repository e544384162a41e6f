package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/errors"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondError responds with the status of err's code. Internal errors are logged and
// answered without their cause.
func respondError(c *gin.Context, err error) {
	apiErr := apierrors.FromError(err)
	status := apiErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()))
	}
	c.JSON(status, apiErr)
}
