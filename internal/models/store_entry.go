package models

import "time"

// StoreEntry 键值持久化表，整份 JSON 文档按键存储
type StoreEntry struct {
	Key       string    `gorm:"primarykey;type:varchar(100)" json:"key"` // 存储键
	Value     []byte    `gorm:"type:blob" json:"value"`                  // JSON 文档
	UpdatedAt time.Time `json:"updatedAt"`                               // 更新时间
}

// TableName 指定表名
func (StoreEntry) TableName() string {
	return "store_entries"
}
