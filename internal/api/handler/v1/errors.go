package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/response"
	"github.com/charity-events/fundraiser-api/internal/service"
)

// renderServiceErr maps service errors onto HTTP statuses. resource,
// field and value describe the lookup for 404 responses.
func renderServiceErr(ctx *gin.Context, op string, err error, resource, field string, value interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, field, value))
	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrSeatTaken),
		errors.Is(err, service.ErrAlreadyUsed),
		errors.Is(err, service.ErrConflict):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// paramID reads a positive numeric path parameter.
func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%s must be a positive integer", name)))
		return 0, false
	}

	return uint(id), true
}
