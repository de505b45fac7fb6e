package service

import (
	"context"
	"time"

	"V_Arcade/internal/model"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// ArtItem 带点赞标注的作品视图
type ArtItem struct {
	ID        uint64           `json:"id"`
	ImageURL  string           `json:"imageUrl"`
	Tags      string           `json:"tags,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Author    model.PublicUser `json:"author"`
	Game      GameRef          `json:"game"`
	Likes     int64            `json:"likes"`
	IsLiked   bool             `json:"isLiked"`
}

type GameRef struct {
	ID    uint64 `json:"id"`
	ApiID string `json:"apiId"`
	Name  string `json:"name"`
}

type FeedService struct {
	artRepo    *mysql.ArtRepository
	likeRepo   *mysql.ArtLikeRepository
	followRepo *mysql.FollowRepository
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{
		artRepo:    &mysql.ArtRepository{DB: db},
		likeRepo:   &mysql.ArtLikeRepository{DB: db},
		followRepo: &mysql.FollowRepository{DB: db},
	}
}

// Popular 全站时间倒序流（沿用原始行为，名为 popular 实为 recent）；
// sort=hot/top 时在取回的窗口内重排
func (s *FeedService) Popular(ctx context.Context, viewerID uint64, limit int, sortMode string) ([]ArtItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	arts, err := s.artRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items, err := annotateArts(ctx, s.likeRepo, arts, viewerID)
	if err != nil {
		return nil, err
	}
	switch sortMode {
	case SortHot:
		HotSort(items, time.Now())
	case SortTop:
		TopSort(items)
	}
	return items, nil
}

// Following 关注流：只看关注的人；没关注任何人返回空列表而不是报错
func (s *FeedService) Following(ctx context.Context, viewerID uint64, limit int) ([]ArtItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	ids, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ArtItem{}, nil
	}
	arts, err := s.artRepo.ListByAuthors(ctx, ids, limit)
	if err != nil {
		return nil, err
	}
	return annotateArts(ctx, s.likeRepo, arts, viewerID)
}

// annotateArts 批量补齐每件作品的赞数和 viewer 的点赞状态，
// 保持输入顺序；viewerID=0（匿名）时 isLiked 恒为 false
func annotateArts(ctx context.Context, likeRepo *mysql.ArtLikeRepository, arts []model.CustomArt, viewerID uint64) ([]ArtItem, error) {
	ids := make([]uint64, 0, len(arts))
	for i := range arts {
		ids = append(ids, arts[i].ID)
	}
	counts, err := likeRepo.CountByArtIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := likeRepo.LikedSet(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ArtItem, 0, len(arts))
	for i := range arts {
		a := &arts[i]
		item := ArtItem{
			ID:        a.ID,
			ImageURL:  a.ImageURL,
			Tags:      a.Tags,
			CreatedAt: a.CreatedAt,
			Likes:     counts[a.ID],
			IsLiked:   liked[a.ID],
		}
		if a.Author != nil {
			item.Author = a.Author.Public()
		}
		if a.Game != nil {
			item.Game = GameRef{ID: a.Game.ID, ApiID: a.Game.ApiID, Name: a.Game.Name}
		}
		items = append(items, item)
	}
	return items, nil
}
