package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToppingName(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	pepperoni := s.mustCreateTopping(t, "Pepperoni")
	s.mustCreateTopping(t, "Mushrooms")

	testCases := []struct {
		name      string
		candidate string
		excludeID uint
		expected  string
	}{
		{name: "new name is accepted", candidate: "Olives", expected: ""},
		{name: "exact duplicate conflicts", candidate: "Pepperoni", expected: "Topping already exists"},
		{name: "case-only difference conflicts", candidate: "pEPPERONI", expected: "Topping already exists"},
		{name: "keeping own name is accepted", candidate: "PEPPERONI", excludeID: pepperoni},
		{name: "renaming onto another topping conflicts", candidate: "mushrooms", excludeID: pepperoni, expected: "Topping name already exists"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := s.validator.ValidateToppingName(ctx, tt.candidate, tt.excludeID)
			if tt.expected == "" {
				assert.NoError(t, err)
				return
			}
			var conflict *NameConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.expected, conflict.Error())
			assert.True(t, errors.Is(err, ErrNameConflict))
		})
	}
}

func TestValidatePizzaName(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	basil := s.mustCreateTopping(t, "Basil")
	margherita := s.mustCreatePizza(t, "Margherita", basil)

	err := s.validator.ValidatePizzaName(ctx, "MARGHERITA", 0)
	assert.ErrorIs(t, err, ErrNameConflict)
	assert.EqualError(t, err, "Pizza name already exists")

	assert.NoError(t, s.validator.ValidatePizzaName(ctx, "margherita", margherita))
	assert.NoError(t, s.validator.ValidatePizzaName(ctx, "Marinara", 0))
}

func TestResolveToppings(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	pepperoni := s.mustCreateTopping(t, "Pepperoni")
	mushrooms := s.mustCreateTopping(t, "Mushrooms")

	t.Run("duplicates are ignored", func(t *testing.T) {
		toppings, err := s.validator.ResolveToppings(ctx, []uint{mushrooms, pepperoni, mushrooms})
		require.NoError(t, err)
		assert.Equal(t, []string{"Pepperoni", "Mushrooms"}, toppingNames(toppings))
	})

	t.Run("empty request resolves to nothing", func(t *testing.T) {
		toppings, err := s.validator.ResolveToppings(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, toppings)
	})

	t.Run("unknown ids are reported", func(t *testing.T) {
		_, err := s.validator.ResolveToppings(ctx, []uint{pepperoni, 999, 998, 999})
		var unknown *UnknownToppingsError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, []uint{998, 999}, unknown.Missing)
		assert.EqualError(t, err, "Some toppings not found")
	})
}

func TestValidateUniqueCombination(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	a := s.mustCreateTopping(t, "Pepperoni")
	b := s.mustCreateTopping(t, "Mushrooms")
	c := s.mustCreateTopping(t, "Olives")
	supreme := s.mustCreatePizza(t, "Supreme", a, b)

	testCases := []struct {
		name      string
		ids       []uint
		excludeID uint
		conflict  bool
	}{
		{name: "same order conflicts", ids: []uint{a, b}, conflict: true},
		{name: "reversed order conflicts", ids: []uint{b, a}, conflict: true},
		{name: "duplicates do not hide a match", ids: []uint{b, a, b}, conflict: true},
		{name: "subset is distinct", ids: []uint{a}},
		{name: "superset is distinct", ids: []uint{a, b, c}},
		{name: "own combination is excluded", ids: []uint{a, b}, excludeID: supreme},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := s.validator.ValidateUniqueCombination(ctx, tt.ids, tt.excludeID)
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			var conflict *ComboConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, "Supreme", conflict.PizzaName)
			assert.EqualError(t, err, "A pizza with this combination of toppings already exists")
		})
	}
}

func TestAssertToppingUnreferenced(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	sauce := s.mustCreateTopping(t, "Tomato Sauce")
	basil := s.mustCreateTopping(t, "Basil")
	olives := s.mustCreateTopping(t, "Olives")
	s.mustCreatePizza(t, "Margherita", sauce, basil)
	s.mustCreatePizza(t, "Marinara", sauce)

	err := s.validator.AssertToppingUnreferenced(ctx, sauce)
	var inUse *ToppingInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, []string{"Margherita", "Marinara"}, inUse.Pizzas)
	assert.ErrorIs(t, err, ErrToppingInUse)

	assert.NoError(t, s.validator.AssertToppingUnreferenced(ctx, olives))
}
