package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"gorm.io/gorm"
)

// ToppingService provides methods to manage toppings
type ToppingService interface {
	// ListToppings retrieves all toppings with the pizzas that use them
	ListToppings(ctx context.Context) ([]models.ToppingDetail, error)
	// GetTopping retrieves a topping by its ID
	GetTopping(ctx context.Context, id uint) (models.ToppingDetail, error)
	// CreateTopping creates a new topping with a unique name
	CreateTopping(ctx context.Context, req models.ToppingRequest) (models.ToppingDetail, error)
	// UpdateTopping renames an existing topping
	UpdateTopping(ctx context.Context, id uint, req models.ToppingRequest) (models.ToppingDetail, error)
	// DeleteTopping deletes a topping no pizza uses
	DeleteTopping(ctx context.Context, id uint) error
}

// toppingService is the implementation of the ToppingService interface
type toppingService struct {
	db        *gorm.DB
	validator ValidationService
}

// NewToppingService creates a new instance of ToppingService
func NewToppingService(db *gorm.DB, validator ValidationService) ToppingService {
	return &toppingService{db: db, validator: validator}
}

func (s *toppingService) ListToppings(ctx context.Context) ([]models.ToppingDetail, error) {
	db := s.db.WithContext(ctx)

	var toppings []models.Topping
	if err := db.Order("id").Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("failed to list toppings: %w", err)
	}

	pizzasByTopping, err := loadPizzasByTopping(db, toppingIDs(toppings))
	if err != nil {
		return nil, err
	}

	details := make([]models.ToppingDetail, 0, len(toppings))
	for _, t := range toppings {
		details = append(details, models.ToppingDetail{Topping: t, Pizzas: pizzasByTopping[t.ID]})
	}
	return details, nil
}

func (s *toppingService) GetTopping(ctx context.Context, id uint) (models.ToppingDetail, error) {
	return getToppingDetail(s.db.WithContext(ctx), id)
}

func (s *toppingService) CreateTopping(ctx context.Context, req models.ToppingRequest) (models.ToppingDetail, error) {
	var detail models.ToppingDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.validator.WithTx(tx).ValidateToppingName(ctx, req.Name, 0); err != nil {
			return err
		}

		topping := models.Topping{Name: req.Name, NameKey: models.NameKey(req.Name)}
		if err := tx.Create(&topping).Error; err != nil {
			return fmt.Errorf("failed to create topping: %w", err)
		}

		detail = models.ToppingDetail{Topping: topping, Pizzas: []models.Pizza{}}
		return nil
	})
	if err != nil {
		return models.ToppingDetail{}, err
	}
	return detail, nil
}

func (s *toppingService) UpdateTopping(ctx context.Context, id uint, req models.ToppingRequest) (models.ToppingDetail, error) {
	var detail models.ToppingDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topping, err := findTopping(tx, id)
		if err != nil {
			return err
		}

		if err := s.validator.WithTx(tx).ValidateToppingName(ctx, req.Name, id); err != nil {
			return err
		}

		topping.Name = req.Name
		topping.NameKey = models.NameKey(req.Name)
		if err := tx.Save(&topping).Error; err != nil {
			return fmt.Errorf("failed to update topping %d: %w", id, err)
		}

		detail, err = getToppingDetail(tx, id)
		return err
	})
	if err != nil {
		return models.ToppingDetail{}, err
	}
	return detail, nil
}

func (s *toppingService) DeleteTopping(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topping, err := findTopping(tx, id)
		if err != nil {
			return err
		}

		if err := s.validator.WithTx(tx).AssertToppingUnreferenced(ctx, id); err != nil {
			return err
		}

		if err := tx.Delete(&topping).Error; err != nil {
			return fmt.Errorf("failed to delete topping %d: %w", id, err)
		}
		return nil
	})
}

// findTopping loads a single topping row, mapping a missing row to NotFoundError
func findTopping(db *gorm.DB, id uint) (models.Topping, error) {
	var topping models.Topping
	if err := db.First(&topping, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Topping{}, &NotFoundError{Entity: EntityTopping, ID: id}
		}
		return models.Topping{}, fmt.Errorf("failed to get topping %d: %w", id, err)
	}
	return topping, nil
}

func getToppingDetail(db *gorm.DB, id uint) (models.ToppingDetail, error) {
	topping, err := findTopping(db, id)
	if err != nil {
		return models.ToppingDetail{}, err
	}

	pizzasByTopping, err := loadPizzasByTopping(db, []uint{id})
	if err != nil {
		return models.ToppingDetail{}, err
	}
	return models.ToppingDetail{Topping: topping, Pizzas: pizzasByTopping[id]}, nil
}

func toppingIDs(toppings []models.Topping) []uint {
	ids := make([]uint, len(toppings))
	for i, t := range toppings {
		ids[i] = t.ID
	}
	return ids
}
