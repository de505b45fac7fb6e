package model

import "time"

// 游戏库状态枚举
const (
	StatusPlaying   = "playing"
	StatusCompleted = "completed"
	StatusBacklog   = "backlog"
	StatusDropped   = "dropped"
)

// UserGame 用户游戏库条目，(user_id, game_id) 唯一
type UserGame struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	UserID         uint64     `gorm:"not null;index;uniqueIndex:uk_user_game" json:"userId"`
	GameID         uint64     `gorm:"not null;index;uniqueIndex:uk_user_game" json:"gameId"`
	Status         string     `gorm:"size:16;not null" json:"status"`
	Rating         *int       `json:"rating"`
	ReviewText     *string    `gorm:"type:text" json:"reviewText"`
	FavoritedArtID *uint64    `gorm:"index" json:"favoritedArtId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Game           *Game      `gorm:"foreignKey:GameID" json:"game,omitempty"`
	FavoritedArt   *CustomArt `gorm:"foreignKey:FavoritedArtID" json:"favoritedArt,omitempty"`
	User           *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserGame) TableName() string { return "user_games" }

func ValidStatus(s string) bool {
	switch s {
	case StatusPlaying, StatusCompleted, StatusBacklog, StatusDropped:
		return true
	}
	return false
}
