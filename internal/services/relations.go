package services

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"gorm.io/gorm"
)

// relatedRow is one side of a pizza_toppings join: the owner id and the entity on the other end
type relatedRow struct {
	OwnerID     uint
	RelatedID   uint
	RelatedName string
}

// loadToppingsByPizza returns the toppings of each pizza, ordered by topping id
func loadToppingsByPizza(db *gorm.DB, pizzaIDs []uint) (map[uint][]models.Topping, error) {
	result := make(map[uint][]models.Topping, len(pizzaIDs))
	if len(pizzaIDs) == 0 {
		return result, nil
	}

	var rows []relatedRow
	err := db.Table("pizza_toppings").
		Select("pizza_toppings.pizza_id AS owner_id, toppings.id AS related_id, toppings.name AS related_name").
		Joins("JOIN toppings ON toppings.id = pizza_toppings.topping_id").
		Where("pizza_toppings.pizza_id IN ?", pizzaIDs).
		Order("pizza_toppings.pizza_id, toppings.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pizza toppings: %w", err)
	}

	for _, row := range rows {
		result[row.OwnerID] = append(result[row.OwnerID], models.Topping{ID: row.RelatedID, Name: row.RelatedName})
	}
	return result, nil
}

// loadPizzasByTopping returns the pizzas using each topping, ordered by pizza id
func loadPizzasByTopping(db *gorm.DB, toppingIDs []uint) (map[uint][]models.Pizza, error) {
	result := make(map[uint][]models.Pizza, len(toppingIDs))
	if len(toppingIDs) == 0 {
		return result, nil
	}

	var rows []relatedRow
	err := db.Table("pizza_toppings").
		Select("pizza_toppings.topping_id AS owner_id, pizzas.id AS related_id, pizzas.name AS related_name").
		Joins("JOIN pizzas ON pizzas.id = pizza_toppings.pizza_id").
		Where("pizza_toppings.topping_id IN ?", toppingIDs).
		Order("pizza_toppings.topping_id, pizzas.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load topping pizzas: %w", err)
	}

	for _, row := range rows {
		result[row.OwnerID] = append(result[row.OwnerID], models.Pizza{ID: row.RelatedID, Name: row.RelatedName})
	}
	return result, nil
}

// replacePizzaToppings swaps the whole association set of a pizza
func replacePizzaToppings(tx *gorm.DB, pizzaID uint, toppings []models.Topping) error {
	if err := tx.Where("pizza_id = ?", pizzaID).Delete(&models.PizzaTopping{}).Error; err != nil {
		return fmt.Errorf("failed to clear toppings of pizza %d: %w", pizzaID, err)
	}
	if len(toppings) == 0 {
		return nil
	}

	links := make([]models.PizzaTopping, len(toppings))
	for i, t := range toppings {
		links[i] = models.PizzaTopping{PizzaID: pizzaID, ToppingID: t.ID}
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to link toppings to pizza %d: %w", pizzaID, err)
	}
	return nil
}
