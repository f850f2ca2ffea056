package public

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/eclypse-shop/internal/models"
)

func TestOrderEndpoints(t *testing.T) {
	r := setupPublicRouter(t, "http_order")

	doJSON(t, r, http.MethodPost, "/api/v1/cart/user-1/items",
		`{"productId":1,"name":"Eclypse Chronograph","price":"4995.00","quantity":1}`)

	orderBody := `{
		"userId": "user-1",
		"shippingInfo": {
			"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
			"address": "1 Analytical Way", "city": "London", "country": "UK", "postalCode": "SW1A 1AA"
		},
		"items": [{"id":1,"productId":1,"name":"Eclypse Chronograph","price":"4995.00","quantity":1}],
		"totalAmount": "4995.00"
	}`

	resp := doJSON(t, r, http.MethodPost, "/api/v1/orders", orderBody)
	if resp.StatusCode != 0 {
		t.Fatalf("create order status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var order models.Order
	if err := json.Unmarshal(resp.Data, &order); err != nil {
		t.Fatalf("decode order failed: %v", err)
	}
	if order.ID != 1 || order.Status != "pending" {
		t.Fatalf("order mismatch: %+v", order)
	}

	t.Run("cart cleared after checkout", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/cart/user-1", "")
		var cart models.Cart
		if err := json.Unmarshal(resp.Data, &cart); err != nil {
			t.Fatalf("decode cart failed: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("cart should be empty after checkout, got %+v", cart.Items)
		}
	})

	t.Run("invalid shipping gives 400", func(t *testing.T) {
		body := strings.Replace(orderBody, `"email": "ada@example.com",`, `"email": "not-an-email",`, 1)
		resp := doJSON(t, r, http.MethodPost, "/api/v1/orders", body)
		if resp.StatusCode != 400 {
			t.Fatalf("status_code want 400 got %d", resp.StatusCode)
		}
	})

	t.Run("invalid payment gives 400", func(t *testing.T) {
		body := strings.Replace(orderBody, `"totalAmount": "4995.00"`,
			`"totalAmount": "4995.00",
		"payment": {"cardName":"Ada Lovelace","cardNumber":"1234","expiry":"12/30","cvv":"123"}`, 1)
		resp := doJSON(t, r, http.MethodPost, "/api/v1/orders", body)
		if resp.StatusCode != 400 {
			t.Fatalf("status_code want 400 got %d", resp.StatusCode)
		}
	})

	t.Run("list my orders", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/orders/user-1", "")
		if resp.StatusCode != 0 {
			t.Fatalf("status_code want 0 got %d", resp.StatusCode)
		}
		var data struct {
			Orders []models.Order `json:"orders"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode orders failed: %v", err)
		}
		if len(data.Orders) != 1 {
			t.Fatalf("orders len want 1 got %d", len(data.Orders))
		}
	})
}
