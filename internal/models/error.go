package models

// APIError is the error body returned by every endpoint.
// Detail is usually a string; a blocked topping delete carries a ToppingInUseDetail.
type APIError struct {
	Detail interface{} `json:"detail" swaggertype:"string" example:"Topping already exists"`
}

// ToppingInUseDetail explains why a topping could not be deleted
type ToppingInUseDetail struct {
	Message string   `json:"message" example:"Cannot delete topping as it is used in existing pizzas"`
	Pizzas  []string `json:"pizzas" example:"Margherita,Supreme"`
}

// Error messages returned to API clients
const (
	MsgToppingExists       = "Topping already exists"
	MsgToppingNameExists   = "Topping name already exists"
	MsgPizzaNameExists     = "Pizza name already exists"
	MsgToppingsNotFound    = "Some toppings not found"
	MsgComboExists         = "A pizza with this combination of toppings already exists"
	MsgToppingInUse        = "Cannot delete topping as it is used in existing pizzas"
	MsgToppingNotFound     = "Topping not found"
	MsgPizzaNotFound       = "Pizza not found"
	MsgInvalidRequestBody  = "Invalid request body"
	MsgInvalidID           = "Invalid ID format"
	MsgInternalServerError = "Internal server error"

	MsgToppingDeleted = "Topping deleted"
	MsgPizzaDeleted   = "Pizza deleted"
)

// NewAPIError creates a new API error with the given detail
func NewAPIError(detail interface{}) APIError {
	return APIError{Detail: detail}
}
