package main

import (
	"github.com/eclypse-shop/internal/config"
	"github.com/eclypse-shop/internal/logger"
	"github.com/eclypse-shop/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Chronograph", Slug: "chronograph"},
		{Name: "Diver", Slug: "diver"},
		{Name: "Dress", Slug: "dress"},
		{Name: "GMT", Slug: "gmt"},
		{Name: "Luxury", Slug: "luxury"},
		{Name: "Pilot", Slug: "pilot"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			Name:        "Eclypse Chronograph",
			Description: "The Eclypse Chronograph combines precision engineering with timeless design. This sophisticated timepiece features a premium stainless steel case, scratch-resistant sapphire crystal, and automatic movement with a 48-hour power reserve.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(4995)),
			CategoryID:  categoryIDs["chronograph"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg",
				"https://images.pexels.com/photos/277390/pexels-photo-277390.jpeg",
				"https://images.pexels.com/photos/9979925/pexels-photo-9979925.jpeg",
			},
			Features: models.StringArray{
				"Automatic movement",
				"Sapphire crystal",
				"48-hour power reserve",
				"100m water resistant",
				"Stainless steel case",
			},
			Rating:  4.9,
			InStock: true,
		},
		{
			Name:        "Eclypse Diver Pro",
			Description: "The ultimate diving companion, the Eclypse Diver Pro offers unparalleled performance at depths of up to 300 meters. Featuring our proprietary luminous dial technology and unidirectional rotating bezel.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(3495)),
			CategoryID:  categoryIDs["diver"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/1697214/pexels-photo-1697214.jpeg",
				"https://images.pexels.com/photos/125779/pexels-photo-125779.jpeg",
				"https://images.pexels.com/photos/2113994/pexels-photo-2113994.jpeg",
			},
			Features: models.StringArray{
				"300m water resistant",
				"Helium escape valve",
				"Super-LumiNova indices",
				"Unidirectional bezel",
				"Rubber strap with deployment clasp",
			},
			Rating:  4.7,
			InStock: true,
		},
		{
			Name:        "Eclypse Classic",
			Description: "Timeless elegance meets modern craftsmanship. The Eclypse Classic is our signature dress watch, featuring a slim profile, dauphine hands, and a hand-finished movement visible through the exhibition caseback.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(2995)),
			CategoryID:  categoryIDs["dress"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/9978722/pexels-photo-9978722.jpeg",
				"https://images.pexels.com/photos/280250/pexels-photo-280250.jpeg",
				"https://images.pexels.com/photos/9978685/pexels-photo-9978685.jpeg",
			},
			Features: models.StringArray{
				"Manual winding movement",
				"38mm case diameter",
				"Alligator leather strap",
				"Exhibition caseback",
				"Date complication",
			},
			Rating:  4.8,
			InStock: true,
		},
		{
			Name:        "Eclypse GMT Master",
			Description: "Perfect for the global traveler, the Eclypse GMT Master allows you to track multiple time zones with precision and style. Features a bidirectional rotating bezel and distinctive 24-hour hand.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(5495)),
			CategoryID:  categoryIDs["gmt"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/1034062/pexels-photo-1034062.jpeg",
				"https://images.pexels.com/photos/236915/pexels-photo-236915.jpeg",
				"https://images.pexels.com/photos/2783873/pexels-photo-2783873.jpeg",
			},
			Features: models.StringArray{
				"GMT complication",
				"Bidirectional 24-hour bezel",
				"Date magnifier",
				"Jubilee bracelet",
				"72-hour power reserve",
			},
			Rating:  4.9,
			InStock: false,
		},
		{
			Name:        "Eclypse Tourbillon Limited",
			Description: "Our pinnacle of watchmaking art, the Eclypse Tourbillon Limited features a hand-finished tourbillon movement visible through the dial. Limited to just 50 pieces worldwide.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(25000)),
			CategoryID:  categoryIDs["luxury"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/9981071/pexels-photo-9981071.jpeg",
				"https://images.pexels.com/photos/9981074/pexels-photo-9981074.jpeg",
				"https://images.pexels.com/photos/9978724/pexels-photo-9978724.jpeg",
			},
			Features: models.StringArray{
				"Visible tourbillon complication",
				"Hand-finished movement",
				"18k rose gold case",
				"Deployant buckle",
				"Limited to 50 pieces",
			},
			Rating:  5.0,
			InStock: true,
		},
		{
			Name:        "Eclypse Pilot",
			Description: "Inspired by aviation timepieces of the 1940s, the Eclypse Pilot features high legibility, a large crown for ease of use with gloves, and our proprietary shock-resistant movement.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(3895)),
			CategoryID:  categoryIDs["pilot"],
			Images: models.StringArray{
				"https://images.pexels.com/photos/3651820/pexels-photo-3651820.jpeg",
				"https://images.pexels.com/photos/47339/mechanics-movement-feinmechanik-wrist-watch-47339.jpeg",
				"https://images.pexels.com/photos/2113994/pexels-photo-2113994.jpeg",
			},
			Features: models.StringArray{
				"Anti-magnetic case",
				"Shock-resistant movement",
				"Oversized crown",
				"Luminous numerals and hands",
				"Leather pilot strap",
			},
			Rating:  4.6,
			InStock: true,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Printf("Seed finished")
}
