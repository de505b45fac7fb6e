package service

import (
	"context"
	"errors"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// LibraryService 管理用户游戏库条目
type LibraryService struct {
	repo     *mysql.LibraryRepository
	gameRepo *mysql.GameRepository
	artRepo  *mysql.ArtRepository
}

func NewLibraryService(db *gorm.DB) *LibraryService {
	return &LibraryService{
		repo:     &mysql.LibraryRepository{DB: db},
		gameRepo: &mysql.GameRepository{DB: db},
		artRepo:  &mysql.ArtRepository{DB: db},
	}
}

// GameInput 入库时携带的上游游戏快照
type GameInput struct {
	ApiID    string `json:"apiId"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// LibraryPage 分页响应
type LibraryPage struct {
	Games      []model.UserGame `json:"games"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"totalPages"`
}

// Add 保存游戏到库：先落游戏快照，再建条目，重复保存报冲突
func (s *LibraryService) Add(ctx context.Context, userID uint64, game GameInput, status string) (*model.UserGame, error) {
	if game.ApiID == "" || game.Name == "" {
		return nil, pkg.Validation("Game apiId and name are required")
	}
	if status == "" {
		status = model.StatusBacklog
	}
	if !model.ValidStatus(status) {
		return nil, pkg.Validation("Invalid status")
	}

	g, err := s.gameRepo.UpsertByApiID(ctx, game.ApiID, game.Name, game.ImageURL)
	if err != nil {
		return nil, err
	}

	entry := &model.UserGame{UserID: userID, GameID: g.ID, Status: status}
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, pkg.Conflict("Game already saved.")
	}
	entry.Game = g
	return entry, nil
}

// UpdateInput 条目可更新字段，nil 表示不改
type UpdateInput struct {
	Status     *string `json:"status"`
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

func (s *LibraryService) Update(ctx context.Context, userID uint64, apiID string, in UpdateInput) (*model.UserGame, error) {
	game, err := s.findGame(ctx, apiID)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if in.Status != nil {
		if !model.ValidStatus(*in.Status) {
			return nil, pkg.Validation("Invalid status")
		}
		values["status"] = *in.Status
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, pkg.Validation("Rating must be between 1 and 5")
		}
		values["rating"] = *in.Rating
	}
	if in.ReviewText != nil {
		values["review_text"] = *in.ReviewText
	}
	if len(values) == 0 {
		return nil, pkg.Validation("Nothing to update")
	}

	affected, err := s.repo.Update(ctx, userID, game.ID, values)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// 零行可能是未入库，也可能是值没变，查一次区分
		if _, ferr := s.repo.FindByUserGame(ctx, userID, game.ID); ferr != nil {
			return nil, pkg.NotFound("Game not in library")
		}
	}
	return s.repo.FindByUserGame(ctx, userID, game.ID)
}

// Favorite 把某张同人图设为条目封面，artID 为 0 表示清除
func (s *LibraryService) Favorite(ctx context.Context, userID uint64, apiID string, artID uint64) (*model.UserGame, error) {
	game, err := s.findGame(ctx, apiID)
	if err != nil {
		return nil, err
	}
	if _, err = s.repo.FindByUserGame(ctx, userID, game.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Game must be in database first.")
		}
		return nil, err
	}

	var value any
	if artID != 0 {
		art, aerr := s.artRepo.FindByID(ctx, artID)
		if aerr != nil {
			return nil, pkg.NotFound("Art not found")
		}
		if art.GameID != game.ID {
			return nil, pkg.Validation("Art does not belong to this game")
		}
		value = artID
	}
	if _, err = s.repo.Update(ctx, userID, game.ID, map[string]any{"favorited_art_id": value}); err != nil {
		return nil, err
	}
	return s.repo.FindByUserGame(ctx, userID, game.ID)
}

func (s *LibraryService) Remove(ctx context.Context, userID uint64, apiID string) error {
	game, err := s.findGame(ctx, apiID)
	if err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, userID, game.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Game not in library")
	}
	return nil
}

// List 分页查询某用户的游戏库，任何人可见
func (s *LibraryService) List(ctx context.Context, userID uint64, filterBy, sortBy string, page, limit int) (*LibraryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	list, total, err := s.repo.ListByUser(ctx, userID, filterBy, sortBy, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &LibraryPage{
		Games:      list,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *LibraryService) findGame(ctx context.Context, apiID string) (*model.Game, error) {
	game, err := s.gameRepo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Game not found")
		}
		return nil, err
	}
	return game, nil
}
