package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
)

type ArtRepository struct {
	DB *gorm.DB
}

func (r *ArtRepository) Create(ctx context.Context, art *model.CustomArt) error {
	return r.DB.WithContext(ctx).Create(art).Error
}

func (r *ArtRepository) FindByID(ctx context.Context, id uint64) (*model.CustomArt, error) {
	var art model.CustomArt
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Game").
		First(&art, id).Error
	return &art, err
}

// ListRecent 全站按创建时间倒序
func (r *ArtRepository) ListRecent(ctx context.Context, limit int) ([]model.CustomArt, error) {
	var list []model.CustomArt
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Game").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByAuthors 指定作者集合内按创建时间倒序；空集合直接返回空
func (r *ArtRepository) ListByAuthors(ctx context.Context, authorIDs []uint64, limit int) ([]model.CustomArt, error) {
	if len(authorIDs) == 0 {
		return []model.CustomArt{}, nil
	}
	var list []model.CustomArt
	err := r.DB.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Preload("Author").
		Preload("Game").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *ArtRepository) ListByGame(ctx context.Context, gameID uint64) ([]model.CustomArt, error) {
	var list []model.CustomArt
	err := r.DB.WithContext(ctx).
		Where("game_id = ?", gameID).
		Preload("Author").
		Preload("Game").
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// ListAll 全量加载，供艺术家排行榜在内存中聚合；按 id 升序保证并列名次稳定
func (r *ArtRepository) ListAll(ctx context.Context) ([]model.CustomArt, error) {
	var list []model.CustomArt
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

// DeleteCascade 删除作品并在同一事务内清理引用：
// 先置空收藏引用，再删点赞、评论，最后删作品本身
func (r *ArtRepository) DeleteCascade(ctx context.Context, artID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserGame{}).
			Where("favorited_art_id = ?", artID).
			Update("favorited_art_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("art_id = ?", artID).Delete(&model.ArtLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("art_id = ?", artID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CustomArt{}, artID).Error
	})
}
