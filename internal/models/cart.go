package models

import "github.com/shopspring/decimal"

// CartItem 购物车行项目，行 id 仅在单个购物车内唯一
type CartItem struct {
	ID        int    `json:"id"`        // 行 id（购物车内唯一，由引擎分配）
	ProductID int    `json:"productId"` // 商品 id
	Name      string `json:"name"`      // 商品名称快照
	Price     Money  `json:"price"`     // 单价快照
	Image     string `json:"image"`     // 商品图片
	Quantity  int    `json:"quantity"`  // 数量
}

// Cart 用户购物车，汇总字段始终由行项目推导
type Cart struct {
	Items      []CartItem `json:"items"`      // 行项目（有序）
	TotalItems int        `json:"totalItems"` // 商品总数量
	TotalPrice Money      `json:"totalPrice"` // 总价
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Recalculate 重新计算汇总字段
func (c *Cart) Recalculate() {
	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range c.Items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalItems = totalItems
	c.TotalPrice = NewMoneyFromDecimal(totalPrice)
}

// NextItemID 按现有最大行 id 加一分配新行 id
func (c *Cart) NextItemID() int {
	maxID := 0
	for _, item := range c.Items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// FindItem 按行 id 查找行项目，返回下标，未找到返回 -1
func (c *Cart) FindItem(itemID int) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// FindProduct 按商品 id 查找行项目，返回下标，未找到返回 -1
func (c *Cart) FindProduct(productID int) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Clone 深拷贝购物车
func (c *Cart) Clone() *Cart {
	if c == nil {
		return NewCart()
	}
	clone := &Cart{
		Items:      make([]CartItem, len(c.Items)),
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
	}
	copy(clone.Items, c.Items)
	return clone
}
