package models

import "time"

// Topping is an ingredient that can be put on any number of pizzas
type Topping struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NameKey   string `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Topping) TableName() string {
	return "toppings"
}

// ToppingDetail is a topping together with the pizzas that use it
type ToppingDetail struct {
	Topping Topping
	Pizzas  []Pizza
}
