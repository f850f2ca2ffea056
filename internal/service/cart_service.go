package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/eclypse-shop/internal/constants"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/repository"
)

// AddCartItemInput 添加购物车项输入
type AddCartItemInput struct {
	ProductID int          `json:"productId"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
}

// CartService 购物车引擎：按用户维护购物车，所有汇总字段由行项目推导。
// 每次变更先落盘再写入内存，落盘失败时内存状态保持不变。
type CartService struct {
	store repository.StoreRepository

	stateMu sync.RWMutex
	carts   map[string]*models.Cart

	flushMu sync.Mutex

	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewCartService 创建购物车引擎并加载已持久化的购物车
func NewCartService(store repository.StoreRepository) (*CartService, error) {
	s := &CartService{
		store:     store,
		carts:     make(map[string]*models.Cart),
		userLocks: make(map[string]*sync.Mutex),
	}
	data, err := store.Load(constants.StoreKeyCarts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.carts); err != nil {
			return nil, fmt.Errorf("decode carts store: %w", err)
		}
	}
	return s, nil
}

// GetCart 获取用户购物车，不存在时返回空购物车（不落盘）
func (s *CartService) GetCart(userID string) *models.Cart {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if cart, ok := s.carts[userID]; ok {
		return cart.Clone()
	}
	return models.NewCart()
}

// AddItem 添加商品：同商品合并数量（保留原单价/名称/图片），否则按最大行 id 加一追加新行
func (s *CartService) AddItem(userID string, input AddCartItemInput) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart, _ bool) error {
		if idx := cart.FindProduct(input.ProductID); idx >= 0 {
			cart.Items[idx].Quantity += input.Quantity
			return nil
		}
		cart.Items = append(cart.Items, models.CartItem{
			ID:        cart.NextItemID(),
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Image:     input.Image,
			Quantity:  input.Quantity,
		})
		return nil
	})
}

// UpdateItemQuantity 按行 id 设置数量，数量不大于 0 时删除该行
func (s *CartService) UpdateItemQuantity(userID string, itemID int, quantity int) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart, exists bool) error {
		if !exists {
			return ErrCartNotFound
		}
		idx := cart.FindItem(itemID)
		if idx < 0 {
			return ErrCartItemNotFound
		}
		if quantity <= 0 {
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
			return nil
		}
		cart.Items[idx].Quantity = quantity
		return nil
	})
}

// RemoveItem 按行 id 删除行项目
func (s *CartService) RemoveItem(userID string, itemID int) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart, exists bool) error {
		if !exists {
			return ErrCartNotFound
		}
		idx := cart.FindItem(itemID)
		if idx < 0 {
			return ErrCartItemNotFound
		}
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		return nil
	})
}

// ClearCart 清空购物车（幂等，购物车不存在也不报错）
func (s *CartService) ClearCart(userID string) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart, _ bool) error {
		cart.Items = []models.CartItem{}
		return nil
	})
}

// mutate 对单个用户的购物车执行一次原子变更：
// 同一用户的变更互斥，不同用户互不阻塞；落盘成功后才对读侧可见。
func (s *CartService) mutate(userID string, fn func(cart *models.Cart, exists bool) error) (*models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.stateMu.RLock()
	existing, exists := s.carts[userID]
	cart := existing.Clone()
	s.stateMu.RUnlock()

	if err := fn(cart, exists); err != nil {
		return nil, err
	}
	cart.Recalculate()

	if err := s.flush(userID, cart); err != nil {
		return nil, err
	}
	return cart.Clone(), nil
}

// flush 将替换了目标用户购物车的完整快照整体落盘，成功后写入内存
func (s *CartService) flush(userID string, cart *models.Cart) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.stateMu.RLock()
	snapshot := make(map[string]*models.Cart, len(s.carts)+1)
	for id, c := range s.carts {
		snapshot[id] = c
	}
	s.stateMu.RUnlock()
	snapshot[userID] = cart

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode carts store: %w", err)
	}
	if err := s.store.Save(constants.StoreKeyCarts, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.stateMu.Lock()
	s.carts[userID] = cart
	s.stateMu.Unlock()
	return nil
}

func (s *CartService) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
