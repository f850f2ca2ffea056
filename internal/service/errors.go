package service

import "errors"

// 服务层哨兵错误
var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidCheckout    = errors.New("invalid checkout payload")
	ErrPersistence        = errors.New("persistence failed")
)
