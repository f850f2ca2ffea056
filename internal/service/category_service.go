package service

import (
	"context"
	"time"

	"github.com/eclypse-shop/internal/cache"
	"github.com/eclypse-shop/internal/models"
	"github.com/eclypse-shop/internal/repository"
)

// CategoryService 分类服务（只读）
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheTTL     time.Duration
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository, cacheTTLSeconds int) *CategoryService {
	ttl := defaultCatalogCacheTTL
	if cacheTTLSeconds > 0 {
		ttl = time.Duration(cacheTTLSeconds) * time.Second
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheTTL:     ttl,
	}
}

// List 分类列表
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	cacheKey := "catalog:categories"

	var cached []models.Category
	hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
	if cacheErr == nil && hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, cacheKey, categories, s.cacheTTL)
	return categories, nil
}
