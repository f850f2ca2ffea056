package repository

import (
	"testing"

	"github.com/eclypse-shop/internal/models"

	"github.com/shopspring/decimal"
)

func setupCatalogRepositories(t *testing.T, name string) (*GormProductRepository, *GormCategoryRepository) {
	t.Helper()
	db := setupRepositoryTestDB(t, name)
	products := NewProductRepository(db)
	categories := NewCategoryRepository(db)

	chronograph := &models.Category{Name: "Chronograph", Slug: "chronograph"}
	diver := &models.Category{Name: "Diver", Slug: "diver"}
	for _, cat := range []*models.Category{chronograph, diver} {
		if err := categories.Create(cat); err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}

	fixtures := []*models.Product{
		{Name: "Eclypse Chronograph", CategoryID: chronograph.ID, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(4995)), Rating: 4.9, InStock: true},
		{Name: "Eclypse Diver Pro", CategoryID: diver.ID, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(3495)), Rating: 4.7, InStock: true},
		{Name: "Eclypse Tourbillon Limited", CategoryID: chronograph.ID, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(25000)), Rating: 5.0, InStock: true},
	}
	for _, product := range fixtures {
		if err := products.Create(product); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	return products, categories
}

func TestProductRepositoryList(t *testing.T) {
	products, _ := setupCatalogRepositories(t, "product_list")

	all, err := products.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("products len want 3 got %d", len(all))
	}

	t.Run("filter by category slug", func(t *testing.T) {
		divers, err := products.List(ProductListFilter{CategorySlug: "diver"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(divers) != 1 || divers[0].Name != "Eclypse Diver Pro" {
			t.Fatalf("diver filter mismatch, got %+v", divers)
		}
	})

	t.Run("unknown slug gives empty list", func(t *testing.T) {
		none, err := products.List(ProductListFilter{CategorySlug: "pocket"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("want empty list got %d products", len(none))
		}
	})

	t.Run("filter by minimum rating", func(t *testing.T) {
		featured, err := products.List(ProductListFilter{MinRating: 4.8})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(featured) != 2 {
			t.Fatalf("featured len want 2 got %d", len(featured))
		}
		for _, product := range featured {
			if product.Rating < 4.8 {
				t.Fatalf("rating below threshold: %+v", product)
			}
		}
	})
}

func TestProductRepositoryGetByID(t *testing.T) {
	products, _ := setupCatalogRepositories(t, "product_get")

	all, err := products.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	got, err := products.GetByID(all[0].ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.Name != all[0].Name {
		t.Fatalf("get mismatch, got %+v", got)
	}
	if got.Category.Slug == "" {
		t.Fatalf("category should be preloaded, got %+v", got.Category)
	}

	missing, err := products.GetByID(9999)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing product should be nil, got %+v", missing)
	}
}

func TestCategoryRepositoryGetBySlug(t *testing.T) {
	_, categories := setupCatalogRepositories(t, "category_get")

	got, err := categories.GetBySlug("chronograph")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.Name != "Chronograph" {
		t.Fatalf("get mismatch, got %+v", got)
	}

	missing, err := categories.GetBySlug("pocket")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing category should be nil, got %+v", missing)
	}
}
