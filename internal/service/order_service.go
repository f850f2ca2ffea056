package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/eclypse-shop/internal/constants"
	"github.com/eclypse-shop/internal/logger"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateOrderInput 下单输入，items 为调用方提供的购物车快照
type CreateOrderInput struct {
	UserID       string              `json:"userId"`
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
	Items        []models.CartItem   `json:"items"`
	TotalAmount  models.Money        `json:"totalAmount"`
}

// OrderService 订单引擎：维护追加式订单日志，创建订单时清空来源购物车。
// 订单 id 分配与追加在同一把锁内完成，保证并发下单 id 不重复。
type OrderService struct {
	store repository.StoreRepository
	carts *CartService

	mu     sync.RWMutex
	orders []models.Order
}

// NewOrderService 创建订单引擎并加载已持久化的订单日志
func NewOrderService(store repository.StoreRepository, carts *CartService) (*OrderService, error) {
	s := &OrderService{
		store:  store,
		carts:  carts,
		orders: []models.Order{},
	}
	data, err := store.Load(constants.StoreKeyOrders)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.orders); err != nil {
			return nil, fmt.Errorf("decode orders store: %w", err)
		}
	}
	return s, nil
}

// CreateOrder 创建订单：按日志最大 id 加一分配订单号，状态置为 pending，
// 创建成功后清空该用户购物车（清空失败仅告警，订单已落盘生效）
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	now := time.Now()

	s.mu.Lock()
	order := models.Order{
		ID:           s.nextOrderIDLocked(),
		UserID:       input.UserID,
		ShippingInfo: input.ShippingInfo,
		Items:        append([]models.CartItem{}, input.Items...),
		TotalAmount:  input.TotalAmount,
		Status:       constants.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.flushLocked(append(s.cloneOrdersLocked(), order)); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	if _, err := s.carts.ClearCart(input.UserID); err != nil {
		logger.Warnw("order_cart_clear_failed", "user_id", input.UserID, "order_id", order.ID, "error", err)
	}
	return &order, nil
}

// ListAllOrders 全部订单，按创建时间倒序（稳定排序）
func (s *OrderService) ListAllOrders() []models.Order {
	s.mu.RLock()
	orders := s.cloneOrdersLocked()
	s.mu.RUnlock()
	sortOrdersByCreatedAtDesc(orders)
	return orders
}

// ListOrdersForUser 按用户过滤订单，排序同 ListAllOrders
func (s *OrderService) ListOrdersForUser(userID string) []models.Order {
	s.mu.RLock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	s.mu.RUnlock()
	sortOrdersByCreatedAtDesc(orders)
	return orders
}

// GetOrderByID 按订单 id 查询
func (s *OrderService) GetOrderByID(orderID int) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			result := order
			return &result, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateOrderStatus 更新订单状态：仅校验状态取值合法，不限制状态跳转顺序
func (s *OrderService) UpdateOrderStatus(orderID int, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, order := range s.orders {
		if order.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	updated := s.cloneOrdersLocked()
	updated[idx].Status = status
	updated[idx].UpdatedAt = time.Now()
	if err := s.flushLocked(updated); err != nil {
		return nil, err
	}
	result := s.orders[idx]
	return &result, nil
}

// Stats 按需重算订单统计，已完成口径为 delivered 状态
func (s *OrderService) Stats() models.OrderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.OrderStats{TotalOrders: len(s.orders)}
	revenue := decimal.Zero
	for _, order := range s.orders {
		switch order.Status {
		case constants.OrderStatusPending:
			stats.PendingOrders++
		case constants.OrderStatusDelivered:
			stats.CompletedOrders++
			revenue = revenue.Add(order.TotalAmount.Decimal)
		}
	}
	stats.TotalRevenue = models.NewMoneyFromDecimal(revenue)
	return stats
}

// nextOrderIDLocked 按日志现有最大 id 加一分配订单 id，需持有写锁
func (s *OrderService) nextOrderIDLocked() int {
	maxID := 0
	for _, order := range s.orders {
		if order.ID > maxID {
			maxID = order.ID
		}
	}
	return maxID + 1
}

// flushLocked 将新日志整体落盘，成功后替换内存日志，需持有写锁
func (s *OrderService) flushLocked(orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders store: %w", err)
	}
	if err := s.store.Save(constants.StoreKeyOrders, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.orders = orders
	return nil
}

func (s *OrderService) cloneOrdersLocked() []models.Order {
	return append([]models.Order{}, s.orders...)
}

func sortOrdersByCreatedAtDesc(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
