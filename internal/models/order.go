package models

import "time"

// ShippingInfo 收货信息
type ShippingInfo struct {
	FirstName  string `json:"firstName"`  // 名
	LastName   string `json:"lastName"`   // 姓
	Email      string `json:"email"`      // 邮箱
	Address    string `json:"address"`    // 地址
	City       string `json:"city"`       // 城市
	Country    string `json:"country"`    // 国家
	PostalCode string `json:"postalCode"` // 邮编
}

// Order 订单记录，创建后仅 Status 与 UpdatedAt 可变
type Order struct {
	ID           int          `json:"id"`           // 订单 id（全局递增）
	UserID       string       `json:"userId"`       // 用户标识
	ShippingInfo ShippingInfo `json:"shippingInfo"` // 收货信息
	Items        []CartItem   `json:"items"`        // 下单时的购物车快照
	TotalAmount  Money        `json:"totalAmount"`  // 订单金额
	Status       string       `json:"status"`       // 订单状态
	CreatedAt    time.Time    `json:"createdAt"`    // 创建时间
	UpdatedAt    time.Time    `json:"updatedAt"`    // 更新时间
}

// OrderStats 订单统计
type OrderStats struct {
	TotalOrders     int   `json:"totalOrders"`     // 订单总数
	PendingOrders   int   `json:"pendingOrders"`   // 待处理订单数
	CompletedOrders int   `json:"completedOrders"` // 已完成（已送达）订单数
	TotalRevenue    Money `json:"totalRevenue"`    // 已完成订单营收
}
