package provider

import (
	"github.com/eclypse-shop/internal/cache"
	"github.com/eclypse-shop/internal/config"
	"github.com/eclypse-shop/internal/logger"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/repository"
	"github.com/eclypse-shop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	StoreRepo    repository.StoreRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository

	// Services
	CartService     *service.CartService
	OrderService    *service.OrderService
	CheckoutService *service.CheckoutService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services（购物车/订单引擎启动时加载持久化状态）
	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StoreRepo = repository.NewStoreRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
}

func (c *Container) initServices() error {
	cartService, err := service.NewCartService(c.StoreRepo)
	if err != nil {
		return err
	}
	orderService, err := service.NewOrderService(c.StoreRepo, cartService)
	if err != nil {
		return err
	}

	c.CartService = cartService
	c.OrderService = orderService
	c.CheckoutService = service.NewCheckoutService()
	c.ProductService = service.NewProductService(c.ProductRepo, c.Config.Catalog.CacheTTLSeconds)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.Config.Catalog.CacheTTLSeconds)
	return nil
}
