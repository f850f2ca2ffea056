package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/provider"
	"github.com/eclypse-shop/internal/repository"
	"github.com/eclypse-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func setupAdminRouter(t *testing.T, name string) (*gin.Engine, *service.OrderService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	store := repository.NewStoreRepository(db)
	cartService, err := service.NewCartService(store)
	if err != nil {
		t.Fatalf("new cart service failed: %v", err)
	}
	orderService, err := service.NewOrderService(store, cartService)
	if err != nil {
		t.Fatalf("new order service failed: %v", err)
	}

	h := New(&provider.Container{
		StoreRepo:    store,
		CartService:  cartService,
		OrderService: orderService,
	})

	r := gin.New()
	adm := r.Group("/api/v1/admin")
	{
		adm.GET("/orders", h.AdminListOrders)
		adm.GET("/orders/:id", h.AdminGetOrder)
		adm.PATCH("/orders/:id", h.AdminUpdateOrderStatus)
		adm.GET("/dashboard/stats", h.AdminDashboardStats)
	}
	return r, orderService
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) envelope {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func createTestOrder(t *testing.T, orders *service.OrderService, userID string, amount int64) *models.Order {
	t.Helper()
	order, err := orders.CreateOrder(service.CreateOrderInput{
		UserID: userID,
		ShippingInfo: models.ShippingInfo{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Address: "1 Analytical Way", City: "London", Country: "UK", PostalCode: "SW1A 1AA",
		},
		Items: []models.CartItem{
			{ID: 1, ProductID: 1, Name: "Eclypse Chronograph", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(amount)), Quantity: 1},
		},
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(amount)),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestAdminOrderEndpoints(t *testing.T) {
	r, orders := setupAdminRouter(t, "http_admin")

	first := createTestOrder(t, orders, "user-1", 4995)
	createTestOrder(t, orders, "user-2", 3495)

	t.Run("list orders", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/admin/orders", "")
		if resp.StatusCode != 0 {
			t.Fatalf("status_code want 0 got %d", resp.StatusCode)
		}
		var data struct {
			Orders []models.Order `json:"orders"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode orders failed: %v", err)
		}
		if len(data.Orders) != 2 {
			t.Fatalf("orders len want 2 got %d", len(data.Orders))
		}
	})

	t.Run("get order", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/admin/orders/%d", first.ID), "")
		if resp.StatusCode != 0 {
			t.Fatalf("status_code want 0 got %d", resp.StatusCode)
		}
	})

	t.Run("missing order gives 404", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/admin/orders/999", "")
		if resp.StatusCode != 404 {
			t.Fatalf("status_code want 404 got %d", resp.StatusCode)
		}
	})

	t.Run("invalid order id gives 400", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/admin/orders/abc", "")
		if resp.StatusCode != 400 {
			t.Fatalf("status_code want 400 got %d", resp.StatusCode)
		}
	})

	t.Run("update status", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d", first.ID), `{"status":"delivered"}`)
		if resp.StatusCode != 0 {
			t.Fatalf("status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
		}
		var order models.Order
		if err := json.Unmarshal(resp.Data, &order); err != nil {
			t.Fatalf("decode order failed: %v", err)
		}
		if order.Status != "delivered" {
			t.Fatalf("status want delivered got %s", order.Status)
		}
	})

	t.Run("invalid status gives 400", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d", first.ID), `{"status":"teleported"}`)
		if resp.StatusCode != 400 {
			t.Fatalf("status_code want 400 got %d", resp.StatusCode)
		}
	})

	t.Run("dashboard stats", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/admin/dashboard/stats", "")
		if resp.StatusCode != 0 {
			t.Fatalf("status_code want 0 got %d", resp.StatusCode)
		}
		var stats models.OrderStats
		if err := json.Unmarshal(resp.Data, &stats); err != nil {
			t.Fatalf("decode stats failed: %v", err)
		}
		if stats.TotalOrders != 2 || stats.PendingOrders != 1 || stats.CompletedOrders != 1 {
			t.Fatalf("stats mismatch: %+v", stats)
		}
		if stats.TotalRevenue.String() != "4995.00" {
			t.Fatalf("revenue want 4995.00 got %s", stats.TotalRevenue.String())
		}
	})
}
