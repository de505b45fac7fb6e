package model

import "time"

// CustomArt 用户上传的游戏同人图
type CustomArt struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"size:512;not null" json:"imageUrl"`
	GameID    uint64    `gorm:"not null;index" json:"gameId"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	Tags      string    `gorm:"size:255" json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Game      *Game     `gorm:"foreignKey:GameID" json:"game,omitempty"`
}

func (CustomArt) TableName() string { return "custom_art" }

// ArtLike 点赞记录，(user_id, art_id) 唯一保证一人一赞
type ArtLike struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_user_art" json:"userId"`
	ArtID     uint64    `gorm:"not null;index;uniqueIndex:uk_user_art" json:"artId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ArtLike) TableName() string { return "art_likes" }

// Comment 同人图评论
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ArtID     uint64    `gorm:"not null;index" json:"artId"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
