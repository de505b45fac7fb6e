package model

import "time"

// GameCollection 用户自建游戏合集
type GameCollection struct {
	ID          uint64           `gorm:"primaryKey" json:"id"`
	UserID      uint64           `gorm:"not null;index" json:"userId"`
	Name        string           `gorm:"size:100;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	IsPublic    bool             `gorm:"not null;default:true" json:"isPublic"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Games       []CollectionGame `gorm:"foreignKey:CollectionID" json:"games,omitempty"`
}

// CollectionGame 合集成员，(collection_id, game_id) 唯一
type CollectionGame struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	CollectionID uint64    `gorm:"not null;index;uniqueIndex:uk_collection_game" json:"collectionId"`
	GameID       uint64    `gorm:"not null;uniqueIndex:uk_collection_game" json:"gameId"`
	CreatedAt    time.Time `json:"createdAt"`
	Game         *Game     `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
