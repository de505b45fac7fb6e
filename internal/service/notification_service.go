package service

import (
	"context"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"
	"V_Arcade/internal/repository/redis"

	"gorm.io/gorm"
)

type NotificationService struct {
	repo  *mysql.NotificationRepository
	cache *redis.NotificationCache
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	s := &NotificationService{
		repo: &mysql.NotificationRepository{DB: db},
	}
	// 未配置 Redis（如单测）时不启用缓存
	if redis.Client != nil {
		s.cache = redis.NewNotificationCache()
	}
	return s
}

// Push 写入站内通知并让未读数缓存失效
func (s *NotificationService) Push(ctx context.Context, userID uint64, typ, content, link string) error {
	err := s.repo.Create(ctx, &model.Notification{
		UserID:  userID,
		Type:    typ,
		Content: content,
		Link:    link,
	})
	if err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID uint64, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint64) error {
	affected, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Notification not found")
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return nil
}

// UnreadCount 轮询接口，先读缓存再回源
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	if s.cache != nil {
		if v, ok, err := s.cache.GetUnread(ctx, userID); err == nil && ok {
			return v, nil
		}
	}
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetUnread(ctx, userID, n)
	}
	return n, nil
}
