package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	seeded, err := SeedDefaults(ctx, s.toppings, s.pizzas)
	require.NoError(t, err)
	assert.True(t, seeded)

	pizzas, err := s.pizzas.ListPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, len(DefaultPizzas))
	assert.Equal(t, []string{"Tomato Sauce", "Mozzarella", "Basil"}, toppingNames(pizzas[0].Toppings))

	toppings, err := s.toppings.ListToppings(ctx)
	require.NoError(t, err)
	assert.Len(t, toppings, len(DefaultToppings))

	// A second run leaves the store alone
	seeded, err = SeedDefaults(ctx, s.toppings, s.pizzas)
	require.NoError(t, err)
	assert.False(t, seeded)
}
