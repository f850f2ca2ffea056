package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID  uint           `gorm:"not null;index" json:"categoryId"`                   // 分类ID
	Name        string         `gorm:"not null" json:"name"`                               // 商品名称
	Description string         `gorm:"type:text" json:"description"`                       // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 价格
	Images      StringArray    `gorm:"type:json" json:"images"`                            // 图片数组
	Features    StringArray    `gorm:"type:json" json:"features"`                          // 卖点数组
	Rating      float64        `gorm:"not null;default:0" json:"rating"`                   // 评分
	InStock     bool           `gorm:"default:true;index" json:"inStock"`                  // 是否有货
	SortOrder   int            `gorm:"default:0;index" json:"sortOrder"`                   // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`                             // 创建时间
	UpdatedAt   time.Time      `json:"updatedAt"`                                          // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
