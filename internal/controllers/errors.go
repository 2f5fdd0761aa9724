package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-management-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"github.com/franciscosanchezn/pizza-management-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter, answering 422 when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.MsgInvalidID))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body, answering 422 on failure
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		log.WithFields(log.Fields{
			"request_id": middleware.GetRequestID(ctx),
			"error":      err.Error(),
		}).Debug("Rejected request body")
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.MsgInvalidRequestBody))
		return false
	}
	return true
}

// respondWithError maps service errors to HTTP responses.
// Rule violations are client errors; anything else is logged and hidden behind a 500.
func respondWithError(ctx *gin.Context, err error) {
	var (
		notFound *services.NotFoundError
		inUse    *services.ToppingInUseError
	)

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFound.Error()))
	case errors.As(err, &inUse):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ToppingInUseDetail{
			Message: models.MsgToppingInUse,
			Pizzas:  inUse.Pizzas,
		}))
	case errors.Is(err, services.ErrNameConflict),
		errors.Is(err, services.ErrUnknownToppings),
		errors.Is(err, services.ErrComboConflict):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(err.Error()))
	default:
		log.WithFields(log.Fields{
			"request_id": middleware.GetRequestID(ctx),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"error":      err.Error(),
		}).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.MsgInternalServerError))
	}
}
