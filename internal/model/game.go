package model

import "time"

// Game 外部图鉴游戏的本地映射，api_id 唯一，首次入库时 upsert
type Game struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ApiID     string    `gorm:"uniqueIndex;size:64;not null" json:"apiId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ImageURL  string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
