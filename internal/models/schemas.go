package models

// ToppingRequest is the body accepted when creating or renaming a topping
type ToppingRequest struct {
	Name string `json:"name" binding:"required" example:"Pepperoni"`
}

// PizzaRequest is the body accepted when creating or replacing a pizza.
// ToppingIDs is the full topping set; it replaces any previous set on update.
type PizzaRequest struct {
	Name       string `json:"name" binding:"required" example:"Supreme"`
	ToppingIDs []uint `json:"topping_ids" binding:"required"`
}

// ToppingSimple is the embedded form of a topping inside a pizza
type ToppingSimple struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Pepperoni"`
}

// PizzaSimple is the embedded form of a pizza inside a topping
type PizzaSimple struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Supreme"`
}

// ToppingResponse is the full topping representation
type ToppingResponse struct {
	ID     uint          `json:"id" example:"1"`
	Name   string        `json:"name" example:"Pepperoni"`
	Pizzas []PizzaSimple `json:"pizzas"`
}

// PizzaResponse is the full pizza representation
type PizzaResponse struct {
	ID       uint            `json:"id" example:"1"`
	Name     string          `json:"name" example:"Supreme"`
	Toppings []ToppingSimple `json:"toppings"`
}

// MessageResponse acknowledges a completed operation
type MessageResponse struct {
	Message string `json:"message" example:"Pizza deleted"`
}

// NewToppingResponse converts a topping and its pizzas to the wire format
func NewToppingResponse(detail ToppingDetail) ToppingResponse {
	pizzas := make([]PizzaSimple, 0, len(detail.Pizzas))
	for _, p := range detail.Pizzas {
		pizzas = append(pizzas, PizzaSimple{ID: p.ID, Name: p.Name})
	}
	return ToppingResponse{
		ID:     detail.Topping.ID,
		Name:   detail.Topping.Name,
		Pizzas: pizzas,
	}
}

// NewPizzaResponse converts a pizza and its toppings to the wire format
func NewPizzaResponse(detail PizzaDetail) PizzaResponse {
	toppings := make([]ToppingSimple, 0, len(detail.Toppings))
	for _, t := range detail.Toppings {
		toppings = append(toppings, ToppingSimple{ID: t.ID, Name: t.Name})
	}
	return PizzaResponse{
		ID:       detail.Pizza.ID,
		Name:     detail.Pizza.Name,
		Toppings: toppings,
	}
}

// NewToppingResponses converts a list of toppings, never returning nil
func NewToppingResponses(details []ToppingDetail) []ToppingResponse {
	responses := make([]ToppingResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, NewToppingResponse(d))
	}
	return responses
}

// NewPizzaResponses converts a list of pizzas, never returning nil
func NewPizzaResponses(details []PizzaDetail) []PizzaResponse {
	responses := make([]PizzaResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, NewPizzaResponse(d))
	}
	return responses
}
