package model

import "time"

// Conversation 两人会话，(user1_id, user2_id) 按 user1_id < user2_id 归一化后唯一
type Conversation struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	User1ID   uint64    `gorm:"not null;index;uniqueIndex:uk_user_pair" json:"user1Id"`
	User2ID   uint64    `gorm:"not null;index;uniqueIndex:uk_user_pair" json:"user2Id"`
	CreatedAt time.Time `json:"createdAt"`
	User1     *User     `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2     *User     `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

// Message 会话消息，文本和图片至少其一
type Message struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ConversationID uint64    `gorm:"not null;index" json:"conversationId"`
	SenderID       uint64    `gorm:"not null" json:"senderId"`
	Content        string    `gorm:"type:text" json:"content"`
	ImageURL       string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	Sender         *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
