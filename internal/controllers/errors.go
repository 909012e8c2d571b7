package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Paging bounds the limit/offset query parameters of list endpoints
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// parsePage reads limit and offset, writing a 400 response when they are invalid
func (p Paging) parsePage(ctx *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(p.DefaultLimit)))
	if err != nil || limit < 1 || limit > p.MaxLimit {
		badRequest(ctx, "limit must be an integer between 1 and "+strconv.Itoa(p.MaxLimit))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(ctx, "offset must be a non-negative integer")
		return 0, 0, false
	}
	return limit, offset, true
}

// parseID reads a positive numeric path parameter, writing a 400 response when it is invalid
func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		badRequest(ctx, "Invalid "+param+" format")
		return 0, false
	}
	return uint(id), true
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

func validationFailed(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid request body",
		map[string]interface{}{"error": err.Error()}))
}

// respondError maps a service error onto the API error response.
// notFoundCode is used for every not-found class error, so a missing recipe
// and a missing referenced food are indistinguishable to the caller.
func respondError(ctx *gin.Context, err error, notFoundCode, notFoundMessage string) {
	_ = ctx.Error(err)
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFoundCode, notFoundMessage))
	case errors.Is(err, services.ErrDuplicate):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrDuplicateName, "A record with this name already exists"))
	case errors.Is(err, services.ErrReferentialConflict):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrFoodInUse, "Food is still used by at least one recipe"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
