package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Pizza represents a named, unique combination of toppings
type Pizza struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	NameKey string `gorm:"not null;index"`
	// CombinationKey is the sorted, de-duplicated topping id list (see CombinationKey)
	CombinationKey string `gorm:"not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaTopping is one row of the pizza/topping many-to-many association
type PizzaTopping struct {
	PizzaID   uint `gorm:"primaryKey;autoIncrement:false"`
	ToppingID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (PizzaTopping) TableName() string {
	return "pizza_toppings"
}

// PizzaDetail is a pizza together with the toppings it references
type PizzaDetail struct {
	Pizza    Pizza
	Toppings []Topping
}

// NameKey returns the case-folded form used for name uniqueness
func NameKey(name string) string {
	return strings.ToLower(name)
}

// DistinctIDs returns ids without duplicates, in ascending order
func DistinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	distinct := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	return distinct
}

// CombinationKey normalizes a topping id set so that equal sets produce equal keys,
// regardless of order or duplicates
func CombinationKey(toppingIDs []uint) string {
	distinct := DistinctIDs(toppingIDs)
	parts := make([]string, len(distinct))
	for i, id := range distinct {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}
