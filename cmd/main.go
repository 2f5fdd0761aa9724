package main

import (
	"os"

	"github.com/franciscosanchezn/pizza-management-api/internal/config"
	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// @title Pizza Management API
// @version 1.0
// @description Manage toppings and pizzas with unique names and unique topping combinations
// @host localhost:8080
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command execution failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pizza-api",
	Short: "Pizza Management API",
	Long: `Pizza Management API manages toppings and pizzas over HTTP.
Topping names and pizza names are unique ignoring case, and no two pizzas
may share the same set of toppings.`,
	SilenceUsage: true,
	// Running the binary without a subcommand serves the API
	RunE: runServe,
}

func init() {
	rootCmd.Flags().BoolVar(&seedFlag, "seed", false, "Seed default toppings and pizzas into an empty database")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// An explicit LOG_LEVEL overrides the environment default.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", config.EnvDevelopment))
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			log.WithField("log_level", raw).Warn("Invalid LOG_LEVEL, keeping environment default")
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}

// setupDatabase opens the configured database, retrying while it is unreachable
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	return db
}

// bootstrap runs the startup steps shared by every command
func bootstrap() (*config.Config, *gorm.DB) {
	loadDotenvFile()
	setUpLogger()
	conf := loadConfig()
	return conf, setupDatabase(conf)
}
