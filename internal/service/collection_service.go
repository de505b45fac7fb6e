package service

import (
	"context"
	"errors"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// CollectionService 游戏合集增删改查，写操作仅限本人
type CollectionService struct {
	repo     *mysql.CollectionRepository
	gameRepo *mysql.GameRepository
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{
		repo:     &mysql.CollectionRepository{DB: db},
		gameRepo: &mysql.GameRepository{DB: db},
	}
}

func (s *CollectionService) Create(ctx context.Context, userID uint64, name, description string, isPublic bool) (*model.GameCollection, error) {
	if name == "" {
		return nil, pkg.Validation("Collection name is required")
	}
	c := &model.GameCollection{
		UserID:      userID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByUser 查看某用户合集；非本人只能看公开的
func (s *CollectionService) ListByUser(ctx context.Context, userID, viewerID uint64) ([]model.GameCollection, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if viewerID == userID {
		return list, nil
	}
	out := make([]model.GameCollection, 0, len(list))
	for i := range list {
		if list[i].IsPublic {
			out = append(out, list[i])
		}
	}
	return out, nil
}

func (s *CollectionService) Get(ctx context.Context, id, viewerID uint64) (*model.GameCollection, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsPublic && c.UserID != viewerID {
		return nil, pkg.Forbidden("Access denied")
	}
	return c, nil
}

func (s *CollectionService) Update(ctx context.Context, id, userID uint64, values map[string]any) (*model.GameCollection, error) {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return nil, err
	}
	allowed := map[string]any{}
	for k, v := range values {
		switch k {
		case "name", "description", "is_public":
			allowed[k] = v
		}
	}
	if len(allowed) == 0 {
		return nil, pkg.Validation("Nothing to update")
	}
	if err := s.repo.Update(ctx, id, allowed); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CollectionService) Delete(ctx context.Context, id, userID uint64) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddGame 往合集加游戏，重复加报冲突
func (s *CollectionService) AddGame(ctx context.Context, id, userID uint64, apiID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	game, err := s.gameRepo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("Game must be in database first.")
		}
		return err
	}
	added, err := s.repo.AddGame(ctx, id, game.ID)
	if err != nil {
		return err
	}
	if !added {
		return pkg.Conflict("Game already in collection")
	}
	return nil
}

func (s *CollectionService) RemoveGame(ctx context.Context, id, userID uint64, apiID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	game, err := s.gameRepo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("Game not found")
		}
		return err
	}
	affected, err := s.repo.RemoveGame(ctx, id, game.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Game not in collection")
	}
	return nil
}

func (s *CollectionService) find(ctx context.Context, id uint64) (*model.GameCollection, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Collection not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CollectionService) owned(ctx context.Context, id, userID uint64) (*model.GameCollection, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, pkg.Forbidden("Access denied")
	}
	return c, nil
}
