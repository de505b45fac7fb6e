package model

import "time"

// Follow 关注有向边，(follower_id, following_id) 唯一，禁止自关注（业务层校验）
type Follow struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	FollowerID  uint64    `gorm:"not null;index:idx_follower_id;uniqueIndex:uk_follower_following" json:"followerId"`
	FollowingID uint64    `gorm:"not null;index:idx_following_id;uniqueIndex:uk_follower_following" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
	Follower    *User     `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following   *User     `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

func (Follow) TableName() string { return "follows" }

// SocialOutbox 社交事件出箱表，由 relayer 异步投递
type SocialOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / unfollow / like / unlike / post / comment
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"` // 事件对象：被关注者ID、artID 等
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SocialOutbox) TableName() string { return "social_outbox" }
