package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"github.com/franciscosanchezn/pizza-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ToppingController handles HTTP requests related to toppings
type ToppingController interface {
	// ListToppings retrieves all toppings
	ListToppings(c *gin.Context)
	// GetTopping retrieves a topping by its ID
	GetTopping(c *gin.Context)
	// CreateTopping creates a new topping
	CreateTopping(c *gin.Context)
	// UpdateTopping renames an existing topping
	UpdateTopping(c *gin.Context)
	// DeleteTopping deletes an unused topping by its ID
	DeleteTopping(c *gin.Context)
}

type toppingController struct {
	service services.ToppingService
}

// NewToppingController creates a new instance of ToppingController
func NewToppingController(service services.ToppingService) ToppingController {
	return &toppingController{service: service}
}

// ListToppings godoc
// @Summary List toppings
// @Description Get every topping with the pizzas that use it
// @Tags toppings
// @Produce json
// @Success 200 {array} models.ToppingResponse
// @Failure 500 {object} models.APIError
// @Router /api/toppings/ [get]
func (c *toppingController) ListToppings(ctx *gin.Context) {
	toppings, err := c.service.ListToppings(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewToppingResponses(toppings))
}

// GetTopping godoc
// @Summary Get topping by ID
// @Description Get a single topping by its ID
// @Tags toppings
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.ToppingResponse
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/toppings/{id} [get]
func (c *toppingController) GetTopping(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	topping, err := c.service.GetTopping(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewToppingResponse(topping))
}

// CreateTopping godoc
// @Summary Create a topping
// @Description Create a topping whose name is unique ignoring case
// @Tags toppings
// @Accept json
// @Produce json
// @Param topping body models.ToppingRequest true "Topping"
// @Success 200 {object} models.ToppingResponse
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/toppings/ [post]
func (c *toppingController) CreateTopping(ctx *gin.Context) {
	var req models.ToppingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	topping, err := c.service.CreateTopping(ctx.Request.Context(), req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewToppingResponse(topping))
}

// UpdateTopping godoc
// @Summary Rename a topping
// @Description Rename a topping; keeping its current name is allowed
// @Tags toppings
// @Accept json
// @Produce json
// @Param id path int true "Topping ID"
// @Param topping body models.ToppingRequest true "Topping"
// @Success 200 {object} models.ToppingResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/toppings/{id} [put]
func (c *toppingController) UpdateTopping(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req models.ToppingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	topping, err := c.service.UpdateTopping(ctx.Request.Context(), id, req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewToppingResponse(topping))
}

// DeleteTopping godoc
// @Summary Delete a topping
// @Description Delete a topping that no pizza uses
// @Tags toppings
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.APIError "detail holds message and the names of the pizzas using the topping"
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/toppings/{id} [delete]
func (c *toppingController) DeleteTopping(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteTopping(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: models.MsgToppingDeleted})
}
