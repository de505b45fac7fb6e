package service

import (
	"context"
	"errors"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// GameService 代理 Giant Bomb 检索，并维护本地游戏快照
type GameService struct {
	repo    *mysql.GameRepository
	libRepo *mysql.LibraryRepository
	gb      *pkg.GiantBombClient
}

func NewGameService(db *gorm.DB, gb *pkg.GiantBombClient) *GameService {
	return &GameService{
		repo:    &mysql.GameRepository{DB: db},
		libRepo: &mysql.LibraryRepository{DB: db},
		gb:      gb,
	}
}

// SearchResult 检索响应，分页信息来自上游
type SearchResult struct {
	Results    any   `json:"results"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func (s *GameService) Search(ctx context.Context, query string, page, limit int) (*SearchResult, error) {
	if s.gb == nil {
		return nil, errors.New("game search is not configured")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	body, total, err := s.gb.Search(ctx, query, page, limit)
	if err != nil {
		return nil, err
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &SearchResult{
		Results:    body["results"],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Detail 单个游戏详情，直接透传上游 results
func (s *GameService) Detail(ctx context.Context, apiID string) (any, error) {
	if s.gb == nil {
		return nil, errors.New("game search is not configured")
	}
	body, err := s.gb.Game(ctx, apiID)
	if err != nil {
		return nil, err
	}
	return body["results"], nil
}

// ReviewItem 游戏评测视图
type ReviewItem struct {
	ID         uint64           `json:"id"`
	Rating     *int             `json:"rating"`
	ReviewText *string          `json:"reviewText"`
	UpdatedAt  any              `json:"updatedAt"`
	User       model.PublicUser `json:"user"`
}

// Reviews 某游戏下所有带文字的评测
func (s *GameService) Reviews(ctx context.Context, apiID string) ([]ReviewItem, error) {
	game, err := s.repo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ReviewItem{}, nil
		}
		return nil, err
	}
	entries, err := s.libRepo.ReviewsByGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ReviewItem, 0, len(entries))
	for i := range entries {
		item := ReviewItem{
			ID:         entries[i].ID,
			Rating:     entries[i].Rating,
			ReviewText: entries[i].ReviewText,
			UpdatedAt:  entries[i].UpdatedAt,
		}
		if entries[i].User != nil {
			item.User = entries[i].User.Public()
		}
		out = append(out, item)
	}
	return out, nil
}

// Ensure 把上游游戏落到本地快照，返回本地记录
func (s *GameService) Ensure(ctx context.Context, apiID, name, imageURL string) (*model.Game, error) {
	if apiID == "" || name == "" {
		return nil, pkg.Validation("Game apiId and name are required")
	}
	return s.repo.UpsertByApiID(ctx, apiID, name, imageURL)
}
