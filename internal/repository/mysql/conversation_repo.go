package mysql

import (
	"context"
	"errors"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository struct {
	DB *gorm.DB
}

// normalizePair 无序对归一化，保证 (a,b) 和 (b,a) 落在同一行
func normalizePair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// FindOrCreate 查找或创建两人会话；唯一索引 + 条件插入关闭并发窗口
func (r *ConversationRepository) FindOrCreate(ctx context.Context, a, b uint64) (*model.Conversation, error) {
	u1, u2 := normalizePair(a, b)
	conv := model.Conversation{User1ID: u1, User2ID: u2}
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
		DoNothing: true,
	}).Create(&conv).Error; err != nil {
		return nil, err
	}
	// 冲突或新建后统一重查，带上参与者信息
	var out model.Conversation
	err := r.DB.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Preload("User1").
		Preload("User2").
		First(&out).Error
	return &out, err
}

// ListByUser 用户参与的全部会话，新的在前
func (r *ConversationRepository) ListByUser(ctx context.Context, userID uint64) ([]model.Conversation, error) {
	var list []model.Conversation
	err := r.DB.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Preload("User1").
		Preload("User2").
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// FindForUser 校验会话归属：非参与者返回 ErrRecordNotFound
func (r *ConversationRepository) FindForUser(ctx context.Context, convID, userID uint64) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.WithContext(ctx).
		Where("id = ? AND (user1_id = ? OR user2_id = ?)", convID, userID, userID).
		First(&conv).Error
	return &conv, err
}

// LastMessage 会话最后一条消息，没有则返回 nil
func (r *ConversationRepository) LastMessage(ctx context.Context, convID uint64) (*model.Message, error) {
	var msg model.Message
	err := r.DB.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Order("created_at DESC, id DESC").
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages 按时间正序；since > 0 时只取 id 更大的增量（轮询用）
func (r *ConversationRepository) ListMessages(ctx context.Context, convID, since uint64) ([]model.Message, error) {
	q := r.DB.WithContext(ctx).Where("conversation_id = ?", convID)
	if since > 0 {
		q = q.Where("id > ?", since)
	}
	var list []model.Message
	err := q.Preload("Sender").
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}
