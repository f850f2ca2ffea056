package admin

import (
	"strconv"
	"strings"

	"github.com/eclypse-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListOrders 管理端订单列表，按创建时间倒序
func (h *Handler) AdminListOrders(c *gin.Context) {
	response.Success(c, gin.H{"orders": h.OrderService.ListAllOrders()})
}

// AdminGetOrder 管理端订单详情
func (h *Handler) AdminGetOrder(c *gin.Context) {
	orderID, ok := getOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrderByID(orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminUpdateOrderStatus 管理端更新订单状态
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID, ok := getOrderID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	order, err := h.OrderService.UpdateOrderStatus(orderID, strings.TrimSpace(req.Status))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminDashboardStats 管理端订单统计
func (h *Handler) AdminDashboardStats(c *gin.Context) {
	response.Success(c, h.OrderService.Stats())
}

func getOrderID(c *gin.Context) (int, bool) {
	orderID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "order id is invalid", nil)
		return 0, false
	}
	return orderID, true
}
