package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/franciscosanchezn/pizza-management-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "router.sqlite")}
	db, err := database.InitDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(context.Background(), db, cfg, database.MigrateUp))

	return NewRouter(Options{DB: db, AllowedOrigins: []string{"http://localhost:3000"}})
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Reader
	switch b := body.(type) {
	case nil:
		payload = bytes.NewReader(nil)
	case string:
		payload = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createTopping(t *testing.T, router *gin.Engine, name string) models.ToppingResponse {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/toppings/", models.ToppingRequest{Name: name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.ToppingResponse](t, w)
}

func createPizza(t *testing.T, router *gin.Engine, name string, toppingIDs ...uint) models.PizzaResponse {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/pizzas/", models.PizzaRequest{Name: name, ToppingIDs: toppingIDs})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.PizzaResponse](t, w)
}

type detailBody struct {
	Detail string `json:"detail"`
}

func TestRootAndHealth(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Pizza Management API", decode[models.MessageResponse](t, w).Message)

	w = doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "ok", health["database"])
	assert.Equal(t, serviceName, health["service"])
}

func TestSwaggerServed(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/pizzas/")
}

func TestToppingLifecycle(t *testing.T) {
	router := setupRouter(t)

	created := createTopping(t, router, "Pepperoni")
	assert.Equal(t, "Pepperoni", created.Name)
	assert.Empty(t, created.Pizzas)

	w := doRequest(router, http.MethodPost, "/api/toppings/", models.ToppingRequest{Name: "pepperoni"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MsgToppingExists, decode[detailBody](t, w).Detail)

	path := fmt.Sprintf("/api/toppings/%d", created.ID)
	w = doRequest(router, http.MethodPut, path, models.ToppingRequest{Name: "Spicy Pepperoni"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Spicy Pepperoni", decode[models.ToppingResponse](t, w).Name)

	createTopping(t, router, "Mushrooms")
	w = doRequest(router, http.MethodPut, path, models.ToppingRequest{Name: "MUSHROOMS"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MsgToppingNameExists, decode[detailBody](t, w).Detail)

	w = doRequest(router, http.MethodGet, "/api/toppings/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ToppingResponse](t, w), 2)

	w = doRequest(router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.MsgToppingDeleted, decode[models.MessageResponse](t, w).Message)

	w = doRequest(router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.MsgToppingNotFound, decode[detailBody](t, w).Detail)
}

func TestPizzaCombinationRules(t *testing.T) {
	router := setupRouter(t)

	pepperoni := createTopping(t, router, "Pepperoni")
	mushrooms := createTopping(t, router, "Mushrooms")

	supreme := createPizza(t, router, "Supreme", pepperoni.ID, mushrooms.ID)
	assert.Len(t, supreme.Toppings, 2)

	w := doRequest(router, http.MethodPost, "/api/pizzas/",
		models.PizzaRequest{Name: "Different", ToppingIDs: []uint{mushrooms.ID, pepperoni.ID}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MsgComboExists, decode[detailBody](t, w).Detail)

	w = doRequest(router, http.MethodPost, "/api/pizzas/",
		models.PizzaRequest{Name: "supreme", ToppingIDs: []uint{pepperoni.ID}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MsgPizzaNameExists, decode[detailBody](t, w).Detail)

	w = doRequest(router, http.MethodPost, "/api/pizzas/",
		models.PizzaRequest{Name: "Ghost", ToppingIDs: []uint{pepperoni.ID, 999}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MsgToppingsNotFound, decode[detailBody](t, w).Detail)

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/toppings/%d", pepperoni.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	topping := decode[models.ToppingResponse](t, w)
	require.Len(t, topping.Pizzas, 1)
	assert.Equal(t, "Supreme", topping.Pizzas[0].Name)
}

func TestPizzaUpdateAndDelete(t *testing.T) {
	router := setupRouter(t)

	pepperoni := createTopping(t, router, "Pepperoni")
	mushrooms := createTopping(t, router, "Mushrooms")
	pizza := createPizza(t, router, "Supreme", pepperoni.ID, mushrooms.ID)
	path := fmt.Sprintf("/api/pizzas/%d", pizza.ID)

	// Resubmitting a pizza's own set is not a conflict
	w := doRequest(router, http.MethodPut, path,
		models.PizzaRequest{Name: "Supreme Deluxe", ToppingIDs: []uint{mushrooms.ID, pepperoni.ID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Supreme Deluxe", decode[models.PizzaResponse](t, w).Name)

	w = doRequest(router, http.MethodPut, path, models.PizzaRequest{Name: "Mushroom", ToppingIDs: []uint{mushrooms.ID}})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.PizzaResponse](t, w)
	require.Len(t, updated.Toppings, 1)
	assert.Equal(t, mushrooms.ID, updated.Toppings[0].ID)

	w = doRequest(router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.MsgPizzaDeleted, decode[models.MessageResponse](t, w).Message)

	w = doRequest(router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.MsgPizzaNotFound, decode[detailBody](t, w).Detail)

	// Toppings are free again once the pizza is gone
	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/toppings/%d", mushrooms.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteToppingInUse(t *testing.T) {
	router := setupRouter(t)

	pepperoni := createTopping(t, router, "Pepperoni")
	createPizza(t, router, "Pepperoni Classic", pepperoni.ID)

	w := doRequest(router, http.MethodDelete, fmt.Sprintf("/api/toppings/%d", pepperoni.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Detail models.ToppingInUseDetail `json:"detail"`
	}](t, w)
	assert.Equal(t, models.MsgToppingInUse, body.Detail.Message)
	assert.Equal(t, []string{"Pepperoni Classic"}, body.Detail.Pizzas)

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/toppings/%d", pepperoni.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedRequests(t *testing.T) {
	router := setupRouter(t)

	testCases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		detail string
	}{
		{"non numeric topping id", http.MethodGet, "/api/toppings/abc", nil, models.MsgInvalidID},
		{"zero pizza id", http.MethodGet, "/api/pizzas/0", nil, models.MsgInvalidID},
		{"negative pizza id", http.MethodDelete, "/api/pizzas/-1", nil, models.MsgInvalidID},
		{"topping body not json", http.MethodPost, "/api/toppings/", "{", models.MsgInvalidRequestBody},
		{"topping name missing", http.MethodPost, "/api/toppings/", map[string]string{}, models.MsgInvalidRequestBody},
		{"pizza toppings missing", http.MethodPost, "/api/pizzas/", map[string]string{"name": "Plain"}, models.MsgInvalidRequestBody},
		{"pizza toppings wrong type", http.MethodPost, "/api/pizzas/", `{"name":"Plain","topping_ids":"1"}`, models.MsgInvalidRequestBody},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.Equal(t, tc.detail, decode[detailBody](t, w).Detail)
		})
	}
}

func TestNotFoundOnUpdate(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPut, "/api/toppings/42", models.ToppingRequest{Name: "Olives"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.MsgToppingNotFound, decode[detailBody](t, w).Detail)

	w = doRequest(router, http.MethodPut, "/api/pizzas/42", models.PizzaRequest{Name: "Olive", ToppingIDs: []uint{}})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.MsgPizzaNotFound, decode[detailBody](t, w).Detail)
}
