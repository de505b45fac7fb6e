package service

import (
	"context"
	"time"

	"V_Arcade/internal/model"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// ActivityItem 动态流条目，带行为人公开信息
type ActivityItem struct {
	ID        uint64           `json:"id"`
	Type      string           `json:"type"`
	Content   string           `json:"content"`
	Link      string           `json:"link"`
	CreatedAt time.Time        `json:"createdAt"`
	User      model.PublicUser `json:"user"`
}

type ActivityService struct {
	repo       *mysql.ActivityRepository
	followRepo *mysql.FollowRepository
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{
		repo:       &mysql.ActivityRepository{DB: db},
		followRepo: &mysql.FollowRepository{DB: db},
	}
}

// Feed 先解析关注集合再取动态；没关注任何人返回空列表
func (s *ActivityService) Feed(ctx context.Context, viewerID uint64, limit int) ([]ActivityItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	ids, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ActivityItem{}, nil
	}
	rows, err := s.repo.ListByUserIDs(ctx, ids, limit)
	if err != nil {
		return nil, err
	}
	items := make([]ActivityItem, 0, len(rows))
	for i := range rows {
		a := &rows[i]
		item := ActivityItem{
			ID:        a.ID,
			Type:      a.Type,
			Content:   a.Content,
			Link:      a.Link,
			CreatedAt: a.CreatedAt,
		}
		if a.User != nil {
			item.User = a.User.Public()
		}
		items = append(items, item)
	}
	return items, nil
}

// Record 产生内容的动作调用这里追加动态；聚合侧只读不写
func (s *ActivityService) Record(ctx context.Context, userID uint64, typ, content, link string) error {
	return s.repo.Create(ctx, &model.Activity{
		UserID:  userID,
		Type:    typ,
		Content: content,
		Link:    link,
	})
}
