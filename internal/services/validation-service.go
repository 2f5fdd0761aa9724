package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"gorm.io/gorm"
)

// ValidationService enforces the uniqueness and reference rules shared by the
// topping and pizza write paths. An excludeID of 0 means no entity is excluded.
type ValidationService interface {
	// WithTx returns a copy bound to the given transaction
	WithTx(tx *gorm.DB) ValidationService
	// ValidateToppingName fails with NameConflictError if another topping has the name, ignoring case
	ValidateToppingName(ctx context.Context, name string, excludeID uint) error
	// ValidatePizzaName fails with NameConflictError if another pizza has the name, ignoring case
	ValidatePizzaName(ctx context.Context, name string, excludeID uint) error
	// ResolveToppings loads every requested topping or fails with UnknownToppingsError
	ResolveToppings(ctx context.Context, ids []uint) ([]models.Topping, error)
	// ValidateUniqueCombination fails with ComboConflictError if another pizza has the same topping set
	ValidateUniqueCombination(ctx context.Context, toppingIDs []uint, excludePizzaID uint) error
	// AssertToppingUnreferenced fails with ToppingInUseError if any pizza uses the topping
	AssertToppingUnreferenced(ctx context.Context, toppingID uint) error
}

type validationService struct {
	db *gorm.DB
}

// NewValidationService creates a new instance of ValidationService
func NewValidationService(db *gorm.DB) ValidationService {
	return &validationService{db: db}
}

func (s *validationService) WithTx(tx *gorm.DB) ValidationService {
	return &validationService{db: tx}
}

func (s *validationService) ValidateToppingName(ctx context.Context, name string, excludeID uint) error {
	taken, err := s.nameTaken(ctx, &models.Topping{}, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to look up topping name: %w", err)
	}
	if taken {
		return &NameConflictError{Entity: EntityTopping, Name: name, Rename: excludeID != 0}
	}
	return nil
}

func (s *validationService) ValidatePizzaName(ctx context.Context, name string, excludeID uint) error {
	taken, err := s.nameTaken(ctx, &models.Pizza{}, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to look up pizza name: %w", err)
	}
	if taken {
		return &NameConflictError{Entity: EntityPizza, Name: name, Rename: excludeID != 0}
	}
	return nil
}

// nameTaken reports whether a row of model other than excludeID has the same name key
func (s *validationService) nameTaken(ctx context.Context, model interface{}, name string, excludeID uint) (bool, error) {
	query := s.db.WithContext(ctx).Model(model).Where("name_key = ?", models.NameKey(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *validationService) ResolveToppings(ctx context.Context, ids []uint) ([]models.Topping, error) {
	distinct := models.DistinctIDs(ids)
	if len(distinct) == 0 {
		return []models.Topping{}, nil
	}

	var toppings []models.Topping
	if err := s.db.WithContext(ctx).Where("id IN ?", distinct).Order("id").Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve toppings: %w", err)
	}

	if len(toppings) != len(distinct) {
		found := make(map[uint]struct{}, len(toppings))
		for _, t := range toppings {
			found[t.ID] = struct{}{}
		}
		var missing []uint
		for _, id := range distinct {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, &UnknownToppingsError{Missing: missing}
	}
	return toppings, nil
}

// ValidateUniqueCombination compares the requested set against every existing pizza.
// The scan is linear in the number of pizza/topping rows; no combination index is consulted.
func (s *validationService) ValidateUniqueCombination(ctx context.Context, toppingIDs []uint, excludePizzaID uint) error {
	db := s.db.WithContext(ctx)

	pizzaQuery := db.Model(&models.Pizza{}).Select("id", "name").Order("id")
	if excludePizzaID != 0 {
		pizzaQuery = pizzaQuery.Where("id <> ?", excludePizzaID)
	}
	var pizzas []models.Pizza
	if err := pizzaQuery.Find(&pizzas).Error; err != nil {
		return fmt.Errorf("failed to list pizzas: %w", err)
	}
	if len(pizzas) == 0 {
		return nil
	}

	var links []models.PizzaTopping
	if err := db.Find(&links).Error; err != nil {
		return fmt.Errorf("failed to list pizza toppings: %w", err)
	}
	sets := make(map[uint]map[uint]struct{}, len(pizzas))
	for _, link := range links {
		if sets[link.PizzaID] == nil {
			sets[link.PizzaID] = make(map[uint]struct{})
		}
		sets[link.PizzaID][link.ToppingID] = struct{}{}
	}

	requested := make(map[uint]struct{}, len(toppingIDs))
	for _, id := range toppingIDs {
		requested[id] = struct{}{}
	}

	for _, pizza := range pizzas {
		if sameSet(sets[pizza.ID], requested) {
			return &ComboConflictError{PizzaName: pizza.Name}
		}
	}
	return nil
}

func sameSet(a, b map[uint]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

func (s *validationService) AssertToppingUnreferenced(ctx context.Context, toppingID uint) error {
	var names []string
	err := s.db.WithContext(ctx).
		Table("pizzas").
		Joins("JOIN pizza_toppings ON pizza_toppings.pizza_id = pizzas.id").
		Where("pizza_toppings.topping_id = ?", toppingID).
		Order("pizzas.id").
		Pluck("pizzas.name", &names).Error
	if err != nil {
		return fmt.Errorf("failed to look up pizzas using topping %d: %w", toppingID, err)
	}
	if len(names) > 0 {
		return &ToppingInUseError{ToppingID: toppingID, Pizzas: names}
	}
	return nil
}
