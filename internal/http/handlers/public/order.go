package public

import (
	"github.com/eclypse-shop/internal/http/response"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID       string               `json:"userId" binding:"required"`
	ShippingInfo models.ShippingInfo  `json:"shippingInfo"`
	Items        []models.CartItem    `json:"items"`
	TotalAmount  models.Money         `json:"totalAmount"`
	Payment      *service.PaymentInfo `json:"payment,omitempty"`
}

// CreateOrder 创建订单：先校验结算入参，再由订单引擎落单并清空购物车
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "order payload is invalid", err)
		return
	}

	input := service.CheckoutInput{
		CreateOrderInput: service.CreateOrderInput{
			UserID:       req.UserID,
			ShippingInfo: req.ShippingInfo,
			Items:        req.Items,
			TotalAmount:  req.TotalAmount,
		},
		Payment: req.Payment,
	}
	if err := h.CheckoutService.Validate(input); err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeBadRequest, "checkout payload is invalid")
		return
	}

	order, err := h.OrderService.CreateOrder(input.CreateOrderInput)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "failed to create order")
		return
	}
	response.Success(c, order)
}

// ListMyOrders 查询用户订单，按创建时间倒序
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"orders": h.OrderService.ListOrdersForUser(userID)})
}
