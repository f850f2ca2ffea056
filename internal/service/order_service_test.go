package service

import (
	"errors"
	"testing"

	"github.com/eclypse-shop/internal/constants"
	"github.com/eclypse-shop/internal/models"
)

func setupOrderServiceTest(t *testing.T, name string) (*OrderService, *CartService) {
	t.Helper()
	store := setupStoreRepositoryTest(t, name)
	carts, err := NewCartService(store)
	if err != nil {
		t.Fatalf("new cart service failed: %v", err)
	}
	orders, err := NewOrderService(store, carts)
	if err != nil {
		t.Fatalf("new order service failed: %v", err)
	}
	return orders, carts
}

func sampleShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Address:    "1 Analytical Way",
		City:       "London",
		Country:    "UK",
		PostalCode: "SW1A 1AA",
	}
}

func sampleOrderInput(userID string) CreateOrderInput {
	return CreateOrderInput{
		UserID:       userID,
		ShippingInfo: sampleShipping(),
		Items: []models.CartItem{
			{ID: 1, ProductID: 1, Name: "Eclypse Chronograph", Price: money(4995), Quantity: 1},
		},
		TotalAmount: money(4995),
	}
}

func TestOrderServiceCreateOrder(t *testing.T) {
	orders, carts := setupOrderServiceTest(t, "order_create")

	if _, err := carts.AddItem("user-1", AddCartItemInput{ProductID: 1, Name: "Eclypse Chronograph", Price: money(4995), Quantity: 1}); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	order, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID != 1 {
		t.Fatalf("order id want 1 got %d", order.ID)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if !order.CreatedAt.Equal(order.UpdatedAt) {
		t.Fatalf("created and updated timestamps should match on creation")
	}
	if len(order.Items) != 1 {
		t.Fatalf("order items len want 1 got %d", len(order.Items))
	}

	cart := carts.GetCart("user-1")
	if len(cart.Items) != 0 || cart.TotalItems != 0 {
		t.Fatalf("cart should be cleared after checkout, got %+v", cart)
	}
}

func TestOrderServiceIDAssignment(t *testing.T) {
	orders, _ := setupOrderServiceTest(t, "order_ids")

	first, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	second, err := orders.CreateOrder(sampleOrderInput("user-2"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("order ids want 1,2 got %d,%d", first.ID, second.ID)
	}
}

func TestOrderServiceListOrders(t *testing.T) {
	orders, _ := setupOrderServiceTest(t, "order_list")

	for _, userID := range []string{"user-1", "user-2", "user-1"} {
		if _, err := orders.CreateOrder(sampleOrderInput(userID)); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	t.Run("all orders newest first", func(t *testing.T) {
		all := orders.ListAllOrders()
		if len(all) != 3 {
			t.Fatalf("orders len want 3 got %d", len(all))
		}
		for i := 1; i < len(all); i++ {
			if all[i].CreatedAt.After(all[i-1].CreatedAt) {
				t.Fatalf("orders not sorted newest first at index %d", i)
			}
		}
	})

	t.Run("filter by user", func(t *testing.T) {
		mine := orders.ListOrdersForUser("user-1")
		if len(mine) != 2 {
			t.Fatalf("user orders len want 2 got %d", len(mine))
		}
		for _, order := range mine {
			if order.UserID != "user-1" {
				t.Fatalf("unexpected user id %s", order.UserID)
			}
		}
	})

	t.Run("unknown user gets empty list", func(t *testing.T) {
		if got := orders.ListOrdersForUser("nobody"); len(got) != 0 {
			t.Fatalf("want empty list got %d orders", len(got))
		}
	})
}

func TestOrderServiceGetOrderByID(t *testing.T) {
	orders, _ := setupOrderServiceTest(t, "order_get")

	created, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := orders.GetOrderByID(created.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.UserID != "user-1" {
		t.Fatalf("user id want user-1 got %s", got.UserID)
	}

	if _, err := orders.GetOrderByID(999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	orders, _ := setupOrderServiceTest(t, "order_status")

	created, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := orders.UpdateOrderStatus(created.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("status want shipped got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("updated timestamp must not precede creation")
	}

	t.Run("backward transition allowed", func(t *testing.T) {
		back, err := orders.UpdateOrderStatus(created.ID, constants.OrderStatusPending)
		if err != nil {
			t.Fatalf("update status failed: %v", err)
		}
		if back.Status != constants.OrderStatusPending {
			t.Fatalf("status want pending got %s", back.Status)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		if _, err := orders.UpdateOrderStatus(created.ID, "teleported"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("want ErrInvalidOrderStatus got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		if _, err := orders.UpdateOrderStatus(999, constants.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("want ErrOrderNotFound got %v", err)
		}
	})
}

func TestOrderServiceStats(t *testing.T) {
	orders, _ := setupOrderServiceTest(t, "order_stats")

	first, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := orders.CreateOrder(sampleOrderInput("user-2")); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	stats := orders.Stats()
	if stats.TotalOrders != 2 || stats.PendingOrders != 2 || stats.CompletedOrders != 0 {
		t.Fatalf("stats mismatch: %+v", stats)
	}
	if stats.TotalRevenue.String() != "0.00" {
		t.Fatalf("revenue want 0.00 got %s", stats.TotalRevenue.String())
	}

	if _, err := orders.UpdateOrderStatus(first.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	stats = orders.Stats()
	if stats.TotalOrders != 2 || stats.PendingOrders != 1 || stats.CompletedOrders != 1 {
		t.Fatalf("stats mismatch after delivery: %+v", stats)
	}
	if stats.TotalRevenue.String() != "4995.00" {
		t.Fatalf("revenue want 4995.00 got %s", stats.TotalRevenue.String())
	}

	if _, err := orders.UpdateOrderStatus(first.ID, constants.OrderStatusCancelled); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	stats = orders.Stats()
	if stats.CompletedOrders != 0 || stats.TotalRevenue.String() != "0.00" {
		t.Fatalf("stats must be recomputed after cancel: %+v", stats)
	}
}

func TestOrderServiceReloadFromStore(t *testing.T) {
	store := setupStoreRepositoryTest(t, "order_reload")
	carts, err := NewCartService(store)
	if err != nil {
		t.Fatalf("new cart service failed: %v", err)
	}
	orders, err := NewOrderService(store, carts)
	if err != nil {
		t.Fatalf("new order service failed: %v", err)
	}
	created, err := orders.CreateOrder(sampleOrderInput("user-1"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	reloaded, err := NewOrderService(store, carts)
	if err != nil {
		t.Fatalf("reload order service failed: %v", err)
	}
	got, err := reloaded.GetOrderByID(created.ID)
	if err != nil {
		t.Fatalf("get reloaded order failed: %v", err)
	}
	if got.TotalAmount.String() != "4995.00" {
		t.Fatalf("reloaded amount want 4995.00 got %s", got.TotalAmount.String())
	}

	next, err := reloaded.CreateOrder(sampleOrderInput("user-2"))
	if err != nil {
		t.Fatalf("create order after reload failed: %v", err)
	}
	if next.ID != created.ID+1 {
		t.Fatalf("id after reload want %d got %d", created.ID+1, next.ID)
	}
}

func TestOrderServiceCreatePersistenceFailure(t *testing.T) {
	store := setupStoreRepositoryTest(t, "order_persist_fail")
	failing := &failingStore{inner: store}
	carts, err := NewCartService(failing)
	if err != nil {
		t.Fatalf("new cart service failed: %v", err)
	}
	orders, err := NewOrderService(failing, carts)
	if err != nil {
		t.Fatalf("new order service failed: %v", err)
	}

	failing.failing = true
	if _, err := orders.CreateOrder(sampleOrderInput("user-1")); !errors.Is(err, ErrPersistence) {
		t.Fatalf("want ErrPersistence got %v", err)
	}

	failing.failing = false
	if got := orders.ListAllOrders(); len(got) != 0 {
		t.Fatalf("failed creation must not be installed, got %d orders", len(got))
	}
}
