package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eclypse-shop/internal/cache"
	"github.com/eclypse-shop/internal/constants"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/repository"
)

const defaultCatalogCacheTTL = 5 * time.Minute

// ProductService 商品目录服务（只读），列表结果走 Redis 读穿缓存
type ProductService struct {
	productRepo repository.ProductRepository
	cacheTTL    time.Duration
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, cacheTTLSeconds int) *ProductService {
	ttl := defaultCatalogCacheTTL
	if cacheTTLSeconds > 0 {
		ttl = time.Duration(cacheTTLSeconds) * time.Second
	}
	return &ProductService{
		productRepo: productRepo,
		cacheTTL:    ttl,
	}
}

// List 商品列表，可按分类 slug 过滤
func (s *ProductService) List(ctx context.Context, categorySlug string) ([]models.Product, error) {
	slug := strings.TrimSpace(categorySlug)
	cacheKey := fmt.Sprintf("catalog:products:%s", slug)

	var cached []models.Product
	hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
	if cacheErr == nil && hit {
		return cached, nil
	}

	products, err := s.productRepo.List(repository.ProductListFilter{
		CategorySlug: slug,
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, cacheKey, products, s.cacheTTL)
	return products, nil
}

// ListFeatured 精选商品列表（评分达到阈值）
func (s *ProductService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	cacheKey := "catalog:products:featured"

	var cached []models.Product
	hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
	if cacheErr == nil && hit {
		return cached, nil
	}

	products, err := s.productRepo.List(repository.ProductListFilter{
		MinRating:    constants.FeaturedRatingThreshold,
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, cacheKey, products, s.cacheTTL)
	return products, nil
}

// GetByID 按 id 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
