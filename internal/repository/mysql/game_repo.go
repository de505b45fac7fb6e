package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	DB *gorm.DB
}

// UpsertByApiID 按外部 api_id 幂等入库：已存在则直接返回现有行，绝不重复
func (r *GameRepository) UpsertByApiID(ctx context.Context, apiID, name, imageURL string) (*model.Game, error) {
	game := model.Game{ApiID: apiID, Name: name, ImageURL: imageURL}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "api_id"}},
		DoNothing: true,
	}).Create(&game).Error
	if err != nil {
		return nil, err
	}
	// 冲突时 Create 不回填 ID，重查一次
	if game.ID == 0 {
		if err = r.DB.WithContext(ctx).Where("api_id = ?", apiID).First(&game).Error; err != nil {
			return nil, err
		}
	}
	return &game, nil
}

func (r *GameRepository) FindByApiID(ctx context.Context, apiID string) (*model.Game, error) {
	var game model.Game
	err := r.DB.WithContext(ctx).Where("api_id = ?", apiID).First(&game).Error
	return &game, err
}

func (r *GameRepository) FindByID(ctx context.Context, id uint64) (*model.Game, error) {
	var game model.Game
	err := r.DB.WithContext(ctx).First(&game, id).Error
	return &game, err
}
