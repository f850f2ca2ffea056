package repository

import (
	"errors"
	"time"

	"github.com/eclypse-shop/internal/models"

	"gorm.io/gorm"
)

// StoreRepository 键值持久化接口，整份 JSON 文档按键读写
type StoreRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// GormStoreRepository GORM 实现
type GormStoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建键值存储仓库
func NewStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// WithTx 绑定事务
func (r *GormStoreRepository) WithTx(tx *gorm.DB) *GormStoreRepository {
	if tx == nil {
		return r
	}
	return &GormStoreRepository{db: tx}
}

// Load 按键读取文档，键不存在时返回 nil
func (r *GormStoreRepository) Load(key string) ([]byte, error) {
	var entry models.StoreEntry
	if err := r.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.Value, nil
}

// Save 按键写入文档，已存在则覆盖
func (r *GormStoreRepository) Save(key string, value []byte) error {
	entry := models.StoreEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	var existing models.StoreEntry
	err := r.db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&entry).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"value":      entry.Value,
		"updated_at": entry.UpdatedAt,
	}
	return r.db.Model(&existing).Updates(updates).Error
}
