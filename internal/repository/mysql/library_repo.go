package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LibraryRepository struct {
	DB *gorm.DB
}

// Create 条件插入，(user_id, game_id) 冲突时返回 changed=false
func (r *LibraryRepository) Create(ctx context.Context, entry *model.UserGame) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoNothing: true,
	}).Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LibraryRepository) FindByUserGame(ctx context.Context, userID, gameID uint64) (*model.UserGame, error) {
	var entry model.UserGame
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&entry).Error
	return &entry, err
}

// ListByUser 带状态过滤和排序的分页查询
func (r *LibraryRepository) ListByUser(ctx context.Context, userID uint64, filterBy, sortBy string, offset, limit int) ([]model.UserGame, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.UserGame{}).Where("user_id = ?", userID)
	if filterBy != "" && filterBy != "all" {
		q = q.Where("status = ?", filterBy)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortBy == "rating" {
		order = "rating DESC"
	}
	var list []model.UserGame
	err := q.Preload("Game").Preload("FavoritedArt").
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *LibraryRepository) Update(ctx context.Context, userID, gameID uint64, values map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.UserGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (r *LibraryRepository) Delete(ctx context.Context, userID, gameID uint64) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.UserGame{})
	return res.RowsAffected, res.Error
}

// ReviewsByGame 某游戏的全部文字评测，新的在前
func (r *LibraryRepository) ReviewsByGame(ctx context.Context, gameID uint64) ([]model.UserGame, error) {
	var list []model.UserGame
	err := r.DB.WithContext(ctx).
		Where("game_id = ? AND review_text IS NOT NULL", gameID).
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// RatedEntries 全量加载带评分的条目，供排行榜在内存中聚合
func (r *LibraryRepository) RatedEntries(ctx context.Context) ([]model.UserGame, error) {
	var list []model.UserGame
	err := r.DB.WithContext(ctx).
		Where("rating IS NOT NULL").
		Preload("Game").
		Order("game_id ASC, id ASC").
		Find(&list).Error
	return list, err
}
