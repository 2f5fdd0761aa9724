package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
)

// DefaultToppings are created by SeedDefaults, in order
var DefaultToppings = []string{"Tomato Sauce", "Mozzarella", "Basil", "Pepperoni", "Bell Peppers", "Olives"}

// DefaultPizzas maps each seeded pizza to the names of its toppings
var DefaultPizzas = []struct {
	Name     string
	Toppings []string
}{
	{Name: "Margherita", Toppings: []string{"Tomato Sauce", "Mozzarella", "Basil"}},
	{Name: "Pepperoni", Toppings: []string{"Tomato Sauce", "Mozzarella", "Pepperoni"}},
	{Name: "Vegetarian", Toppings: []string{"Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives"}},
}

// SeedDefaults fills an empty store with the default menu through the validated
// create paths. It reports false without writing when any topping already exists.
func SeedDefaults(ctx context.Context, toppings ToppingService, pizzas PizzaService) (bool, error) {
	existing, err := toppings.ListToppings(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	ids := make(map[string]uint, len(DefaultToppings))
	for _, name := range DefaultToppings {
		created, err := toppings.CreateTopping(ctx, models.ToppingRequest{Name: name})
		if err != nil {
			return false, fmt.Errorf("failed to seed topping %q: %w", name, err)
		}
		ids[name] = created.Topping.ID
	}

	for _, p := range DefaultPizzas {
		toppingIDs := make([]uint, 0, len(p.Toppings))
		for _, name := range p.Toppings {
			toppingIDs = append(toppingIDs, ids[name])
		}
		if _, err := pizzas.CreatePizza(ctx, models.PizzaRequest{Name: p.Name, ToppingIDs: toppingIDs}); err != nil {
			return false, fmt.Errorf("failed to seed pizza %q: %w", p.Name, err)
		}
	}
	return true, nil
}
