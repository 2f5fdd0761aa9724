package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// ListPizzas retrieves all pizzas with their toppings
	ListPizzas(ctx context.Context) ([]models.PizzaDetail, error)
	// GetPizza retrieves a pizza by its ID
	GetPizza(ctx context.Context, id uint) (models.PizzaDetail, error)
	// CreatePizza creates a new pizza from a name and a topping set
	CreatePizza(ctx context.Context, req models.PizzaRequest) (models.PizzaDetail, error)
	// UpdatePizza renames a pizza and replaces its topping set
	UpdatePizza(ctx context.Context, id uint, req models.PizzaRequest) (models.PizzaDetail, error)
	// DeletePizza deletes a pizza and its topping links by its ID
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db        *gorm.DB
	validator ValidationService
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB, validator ValidationService) PizzaService {
	return &pizzaService{db: db, validator: validator}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.PizzaDetail, error) {
	db := s.db.WithContext(ctx)

	var pizzas []models.Pizza
	if err := db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}

	ids := make([]uint, len(pizzas))
	for i, p := range pizzas {
		ids[i] = p.ID
	}
	toppingsByPizza, err := loadToppingsByPizza(db, ids)
	if err != nil {
		return nil, err
	}

	details := make([]models.PizzaDetail, 0, len(pizzas))
	for _, p := range pizzas {
		details = append(details, models.PizzaDetail{Pizza: p, Toppings: toppingsByPizza[p.ID]})
	}
	return details, nil
}

func (s *pizzaService) GetPizza(ctx context.Context, id uint) (models.PizzaDetail, error) {
	return getPizzaDetail(s.db.WithContext(ctx), id)
}

func (s *pizzaService) CreatePizza(ctx context.Context, req models.PizzaRequest) (models.PizzaDetail, error) {
	var detail models.PizzaDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		toppings, err := s.validatePizza(ctx, tx, req, 0)
		if err != nil {
			return err
		}

		pizza := models.Pizza{
			Name:           req.Name,
			NameKey:        models.NameKey(req.Name),
			CombinationKey: models.CombinationKey(req.ToppingIDs),
		}
		if err := tx.Create(&pizza).Error; err != nil {
			return translateWriteError(err, "failed to create pizza")
		}
		if err := replacePizzaToppings(tx, pizza.ID, toppings); err != nil {
			return err
		}

		detail = models.PizzaDetail{Pizza: pizza, Toppings: toppings}
		return nil
	})
	if err != nil {
		return models.PizzaDetail{}, err
	}
	return detail, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, req models.PizzaRequest) (models.PizzaDetail, error) {
	var detail models.PizzaDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, id)
		if err != nil {
			return err
		}

		toppings, err := s.validatePizza(ctx, tx, req, id)
		if err != nil {
			return err
		}

		pizza.Name = req.Name
		pizza.NameKey = models.NameKey(req.Name)
		pizza.CombinationKey = models.CombinationKey(req.ToppingIDs)
		if err := tx.Save(&pizza).Error; err != nil {
			return translateWriteError(err, fmt.Sprintf("failed to update pizza %d", id))
		}
		if err := replacePizzaToppings(tx, id, toppings); err != nil {
			return err
		}

		detail = models.PizzaDetail{Pizza: pizza, Toppings: toppings}
		return nil
	})
	if err != nil {
		return models.PizzaDetail{}, err
	}
	return detail, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, id)
		if err != nil {
			return err
		}

		if err := replacePizzaToppings(tx, id, nil); err != nil {
			return err
		}
		if err := tx.Delete(&pizza).Error; err != nil {
			return fmt.Errorf("failed to delete pizza %d: %w", id, err)
		}
		return nil
	})
}

// validatePizza runs every create/update check in order and returns the resolved toppings.
// Nothing is written before all checks pass.
func (s *pizzaService) validatePizza(ctx context.Context, tx *gorm.DB, req models.PizzaRequest, excludeID uint) ([]models.Topping, error) {
	validator := s.validator.WithTx(tx)

	if err := validator.ValidatePizzaName(ctx, req.Name, excludeID); err != nil {
		return nil, err
	}
	toppings, err := validator.ResolveToppings(ctx, req.ToppingIDs)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateUniqueCombination(ctx, req.ToppingIDs, excludeID); err != nil {
		return nil, err
	}
	return toppings, nil
}

// translateWriteError maps a unique violation on pizzas to ComboConflictError.
// combination_key is the only unique column, so a duplicate means a concurrent
// writer stored the same topping set after validation passed.
func translateWriteError(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ComboConflictError{}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// findPizza loads a single pizza row, mapping a missing row to NotFoundError
func findPizza(db *gorm.DB, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, &NotFoundError{Entity: EntityPizza, ID: id}
		}
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}
	return pizza, nil
}

func getPizzaDetail(db *gorm.DB, id uint) (models.PizzaDetail, error) {
	pizza, err := findPizza(db, id)
	if err != nil {
		return models.PizzaDetail{}, err
	}

	toppingsByPizza, err := loadToppingsByPizza(db, []uint{id})
	if err != nil {
		return models.PizzaDetail{}, err
	}
	return models.PizzaDetail{Pizza: pizza, Toppings: toppingsByPizza[id]}, nil
}
