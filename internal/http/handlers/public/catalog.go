package public

import (
	"strconv"
	"strings"

	"github.com/eclypse-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts 商品列表，支持 ?category=slug 过滤
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.List(c.Request.Context(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetFeaturedProducts 精选商品列表
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.ProductService.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProductByID 商品详情
func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "product id is invalid", nil)
		return
	}

	product, err := h.ProductService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "failed to load product")
		return
	}
	response.Success(c, product)
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
