package router

import (
	"fmt"
	"strings"

	"github.com/eclypse-shop/internal/cache"
	"github.com/eclypse-shop/internal/config"
	"github.com/eclypse-shop/internal/constants"
	adminhandlers "github.com/eclypse-shop/internal/http/handlers/admin"
	publichandlers "github.com/eclypse-shop/internal/http/handlers/public"
	"github.com/eclypse-shop/internal/http/response"
	"github.com/eclypse-shop/internal/logger"
	"github.com/eclypse-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/featured", publicHandler.GetFeaturedProducts)
		apiV1.GET("/products/:id", publicHandler.GetProductByID)
		apiV1.GET("/categories", publicHandler.GetCategories)

		// 购物车
		cart := apiV1.Group("/cart/:user_id")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:item_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:item_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 订单
		apiV1.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), publicHandler.CreateOrder)
		apiV1.GET("/orders/:user_id", publicHandler.ListMyOrders)

		// 管理端（单独分组，便于后续统一挂载鉴权中间件）
		admin := apiV1.Group("/admin")
		{
			admin.GET("/orders", adminHandler.AdminListOrders)
			admin.GET("/orders/:id", adminHandler.AdminGetOrder)
			admin.PATCH("/orders/:id", adminHandler.AdminUpdateOrderStatus)
			admin.GET("/dashboard/stats", adminHandler.AdminDashboardStats)
		}
	}

	return r
}
