package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/models"
)

// Sentinel errors, one per rule. The typed errors below unwrap to them.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrNameConflict    = errors.New("name already exists")
	ErrUnknownToppings = errors.New("unknown toppings")
	ErrComboConflict   = errors.New("topping combination already exists")
	ErrToppingInUse    = errors.New("topping is used by pizzas")
)

const (
	EntityTopping = "Topping"
	EntityPizza   = "Pizza"
)

// NotFoundError is returned when an entity id is absent from the store
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.Entity == EntityTopping {
		return models.MsgToppingNotFound
	}
	return models.MsgPizzaNotFound
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NameConflictError is returned when another entity already uses the name, ignoring case.
// Rename is set when the conflict was found while updating an existing entity.
type NameConflictError struct {
	Entity string
	Name   string
	Rename bool
}

func (e *NameConflictError) Error() string {
	if e.Entity == EntityTopping {
		if e.Rename {
			return models.MsgToppingNameExists
		}
		return models.MsgToppingExists
	}
	return models.MsgPizzaNameExists
}

func (e *NameConflictError) Unwrap() error { return ErrNameConflict }

// UnknownToppingsError lists requested topping ids that do not exist
type UnknownToppingsError struct {
	Missing []uint
}

func (e *UnknownToppingsError) Error() string {
	return models.MsgToppingsNotFound
}

func (e *UnknownToppingsError) Unwrap() error { return ErrUnknownToppings }

// ComboConflictError is returned when another pizza already has the same topping set
type ComboConflictError struct {
	PizzaName string
}

func (e *ComboConflictError) Error() string {
	return models.MsgComboExists
}

func (e *ComboConflictError) Unwrap() error { return ErrComboConflict }

// ToppingInUseError blocks deleting a topping that pizzas still reference
type ToppingInUseError struct {
	ToppingID uint
	Pizzas    []string
}

func (e *ToppingInUseError) Error() string {
	return fmt.Sprintf("%s: %v", models.MsgToppingInUse, e.Pizzas)
}

func (e *ToppingInUseError) Unwrap() error { return ErrToppingInUse }
