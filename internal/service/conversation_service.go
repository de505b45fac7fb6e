package service

import (
	"context"
	"errors"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// ConversationSummary 会话列表视图：对端用户 + 最新一条消息
type ConversationSummary struct {
	ID          uint64           `json:"id"`
	Other       model.PublicUser `json:"otherUser"`
	LastMessage *model.Message   `json:"lastMessage"`
	CreatedAt   any              `json:"createdAt"`
}

type ConversationService struct {
	repo     *mysql.ConversationRepository
	userRepo *mysql.UserRepository
}

func NewConversationService(db *gorm.DB) *ConversationService {
	return &ConversationService{
		repo:     &mysql.ConversationRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
	}
}

func (s *ConversationService) List(ctx context.Context, userID uint64) ([]ConversationSummary, error) {
	convs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ConversationSummary, 0, len(convs))
	for i := range convs {
		summary := ConversationSummary{ID: convs[i].ID, CreatedAt: convs[i].CreatedAt}
		if convs[i].User1ID == userID {
			if convs[i].User2 != nil {
				summary.Other = convs[i].User2.Public()
			}
		} else if convs[i].User1 != nil {
			summary.Other = convs[i].User1.Public()
		}
		last, lerr := s.repo.LastMessage(ctx, convs[i].ID)
		if lerr != nil {
			return nil, lerr
		}
		summary.LastMessage = last
		out = append(out, summary)
	}
	return out, nil
}

// Open 打开与某用户的会话，不存在则创建
func (s *ConversationService) Open(ctx context.Context, userID, otherID uint64) (*model.Conversation, error) {
	if userID == otherID {
		return nil, pkg.Validation("Cannot message yourself")
	}
	if _, err := s.userRepo.FindByID(ctx, otherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("User not found")
		}
		return nil, err
	}
	return s.repo.FindOrCreate(ctx, userID, otherID)
}

// Messages 拉取会话消息，since 为上次已见的最大消息 ID，用于轮询增量
func (s *ConversationService) Messages(ctx context.Context, convID, userID, since uint64) ([]model.Message, error) {
	if _, err := s.member(ctx, convID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, convID, since)
}

// Send 发送消息，文本和图片至少其一
func (s *ConversationService) Send(ctx context.Context, convID, userID uint64, content, imageURL string) (*model.Message, error) {
	if content == "" && imageURL == "" {
		return nil, pkg.Validation("Message content or image is required")
	}
	if _, err := s.member(ctx, convID, userID); err != nil {
		return nil, err
	}
	msg := &model.Message{
		ConversationID: convID,
		SenderID:       userID,
		Content:        content,
		ImageURL:       imageURL,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ConversationService) member(ctx context.Context, convID, userID uint64) (*model.Conversation, error) {
	conv, err := s.repo.FindForUser(ctx, convID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.Forbidden("Access denied")
		}
		return nil, err
	}
	return conv, nil
}
