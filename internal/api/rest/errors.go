package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/api/apierrors"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusConflict, apierrors.NewConflictError(message, details...))
}

// respondServiceUnavailable responds with a service unavailable error
func respondServiceUnavailable(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceUnavailableError(message, details...))
}

// respondInternalError logs err and responds with an internal server error without leaking it
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}
