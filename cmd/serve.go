package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizza-management-api/internal/config"
	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/franciscosanchezn/pizza-management-api/internal/router"
	"github.com/franciscosanchezn/pizza-management-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedFlag bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run database migrations and serve the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&seedFlag, "seed", false, "Seed default toppings and pizzas into an empty database")
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf, db := bootstrap()
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checkPanicErr(database.Migrate(ctx, db, conf.Database, database.MigrateUp))

	if seedFlag || conf.SeedData {
		seedDatabase(ctx, db)
	}

	if conf.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:         conf.Address(),
		Handler:      router.NewRouter(router.Options{DB: db, AllowedOrigins: conf.AllowedOrigins}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// seedDatabase seeds the database with the default menu when it is empty
func seedDatabase(ctx context.Context, db *gorm.DB) {
	validator := services.NewValidationService(db)
	seeded, err := services.SeedDefaults(ctx,
		services.NewToppingService(db, validator),
		services.NewPizzaService(db, validator))
	checkPanicErr(err)

	if seeded {
		log.Info("Database seeded successfully")
	} else {
		log.Info("Database already contains data, skipping seed")
	}
}
