// Package controller holds helpers shared by the teacher, student and hub
// handlers: error-to-status mapping, body binding and path parsing.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/middleware"
	"github.com/lshigami/classroom-portal/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes the status and body matching a service error.
func RespondError(ctx *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: verr.Details()})
	case errors.Is(err, service.ErrIncompleteAttempt):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Resource not found"})
	case errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrEvaluationClosed),
		errors.Is(err, service.ErrDuplicate):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "operation failed"})
	}
}

// BindJSON binds the body into req and answers 400 on failure.
func BindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: middleware.BindingErrorDetails(err)})
		return false
	}
	return true
}

// UintParam parses a numeric path parameter and answers 400 when malformed.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}

// Principal returns the authenticated caller or answers 401.
func Principal(ctx *gin.Context) (middleware.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "not authenticated"})
	}
	return p, ok
}
