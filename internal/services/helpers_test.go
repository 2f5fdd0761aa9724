package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "services.sqlite")}
	db, err := database.InitDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(context.Background(), db, cfg, database.MigrateUp))
	return db
}

type testServices struct {
	db        *gorm.DB
	validator ValidationService
	toppings  ToppingService
	pizzas    PizzaService
}

func setupServices(t *testing.T) testServices {
	db := setupTestDB(t)
	validator := NewValidationService(db)
	return testServices{
		db:        db,
		validator: validator,
		toppings:  NewToppingService(db, validator),
		pizzas:    NewPizzaService(db, validator),
	}
}

func (s testServices) mustCreateTopping(t *testing.T, name string) uint {
	t.Helper()
	detail, err := s.toppings.CreateTopping(context.Background(), models.ToppingRequest{Name: name})
	require.NoError(t, err)
	return detail.Topping.ID
}

func (s testServices) mustCreatePizza(t *testing.T, name string, toppingIDs ...uint) uint {
	t.Helper()
	detail, err := s.pizzas.CreatePizza(context.Background(), models.PizzaRequest{Name: name, ToppingIDs: toppingIDs})
	require.NoError(t, err)
	return detail.Pizza.ID
}

func toppingNames(toppings []models.Topping) []string {
	names := make([]string, len(toppings))
	for i, t := range toppings {
		names[i] = t.Name
	}
	return names
}
