package router

import (
	"context"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-management-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-management-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/franciscosanchezn/pizza-management-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-management-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const serviceName = "pizza-management-api"

// Options configures NewRouter
type Options struct {
	DB             *gorm.DB
	AllowedOrigins []string
}

// NewRouter wires services, controllers and middleware into a gin engine
func NewRouter(opts Options) *gin.Engine {
	validator := services.NewValidationService(opts.DB)
	toppingController := controllers.NewToppingController(services.NewToppingService(opts.DB, validator))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(opts.DB, validator))

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.CORS(opts.AllowedOrigins),
	)

	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler(opts.DB))

	api := router.Group("/api")
	{
		toppings := api.Group("/toppings")
		{
			toppings.GET("/", toppingController.ListToppings)
			toppings.POST("/", toppingController.CreateTopping)
			toppings.GET("/:id", toppingController.GetTopping)
			toppings.PUT("/:id", toppingController.UpdateTopping)
			toppings.DELETE("/:id", toppingController.DeleteTopping)
		}

		pizzas := api.Group("/pizzas")
		{
			pizzas.GET("/", pizzaController.GetAllPizzas)
			pizzas.POST("/", pizzaController.CreatePizza)
			pizzas.GET("/:id", pizzaController.GetPizzaByID)
			pizzas.PUT("/:id", pizzaController.UpdatePizza)
			pizzas.DELETE("/:id", pizzaController.DeletePizza)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// rootHandler handles the API root
// @Summary API root
// @Description Welcome message
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Pizza Management API"})
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, dbStatus, code := "healthy", "ok", http.StatusOK

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(pingCtx, db); err != nil {
			status, dbStatus, code = "unhealthy", "unavailable", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
