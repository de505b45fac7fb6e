package model

import "time"

// Notification 站内通知，type: like / comment / follow
type Notification struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Content   string    `gorm:"size:255;not null" json:"content"`
	Link      string    `gorm:"size:255" json:"link"`
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Activity 动态记录，只追加，供关注者动态流读取
type Activity struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Type      string    `gorm:"size:16;not null" json:"type"` // post / comment
	Content   string    `gorm:"size:255;not null" json:"content"`
	Link      string    `gorm:"size:255" json:"link"`
	CreatedAt time.Time `json:"createdAt"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Activity) TableName() string { return "activities" }
