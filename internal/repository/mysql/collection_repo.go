package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CollectionRepository struct {
	DB *gorm.DB
}

func (r *CollectionRepository) Create(ctx context.Context, c *model.GameCollection) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CollectionRepository) ListByUser(ctx context.Context, userID uint64) ([]model.GameCollection, error) {
	var list []model.GameCollection
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Games.Game").
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *CollectionRepository) FindByID(ctx context.Context, id uint64) (*model.GameCollection, error) {
	var c model.GameCollection
	err := r.DB.WithContext(ctx).
		Preload("Games.Game").
		First(&c, id).Error
	return &c, err
}

func (r *CollectionRepository) Update(ctx context.Context, id uint64, values map[string]any) error {
	return r.DB.WithContext(ctx).Model(&model.GameCollection{}).
		Where("id = ?", id).
		Updates(values).Error
}

// Delete 连成员一起删
func (r *CollectionRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&model.CollectionGame{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GameCollection{}, id).Error
	})
}

// AddGame 条件插入，(collection_id, game_id) 冲突返回 changed=false
func (r *CollectionRepository) AddGame(ctx context.Context, collectionID, gameID uint64) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_id"}, {Name: "game_id"}},
		DoNothing: true,
	}).Create(&model.CollectionGame{CollectionID: collectionID, GameID: gameID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CollectionRepository) RemoveGame(ctx context.Context, collectionID, gameID uint64) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("collection_id = ? AND game_id = ?", collectionID, gameID).
		Delete(&model.CollectionGame{})
	return res.RowsAffected, res.Error
}
