package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"github.com/franciscosanchezn/pizza-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with their toppings
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaResponse
// @Failure 500 {object} models.APIError
// @Router /api/pizzas/ [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaResponses(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaResponse
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), pizzaID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaResponse(pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza with a unique name and a topping combination no other pizza has
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.PizzaRequest true "Pizza"
// @Success 200 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/pizzas/ [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req models.PizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaResponse(pizza))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Rename a pizza and replace its whole topping set
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.PizzaRequest true "Pizza"
// @Success 200 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/pizzas/{id} [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx)
	if !ok {
		return
	}

	var req models.PizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), pizzaID, req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaResponse(pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID; its toppings are kept
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), pizzaID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: models.MsgPizzaDeleted})
}
