package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

// Create 动态只追加，发内容的动作负责写入
func (r *ActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

// ListByUserIDs 指定用户集合的动态，新的在前；空集合直接返回空
func (r *ActivityRepository) ListByUserIDs(ctx context.Context, userIDs []uint64, limit int) ([]model.Activity, error) {
	if len(userIDs) == 0 {
		return []model.Activity{}, nil
	}
	var list []model.Activity
	err := r.DB.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
