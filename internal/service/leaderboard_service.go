package service

import (
	"context"
	"sort"

	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// ArtistRank 艺术家榜单条目
type ArtistRank struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	TotalLikes    int64  `json:"totalLikes"`
	TotalDrawings int64  `json:"totalDrawings"`
}

// GameRank 游戏榜单条目
type GameRank struct {
	ID            uint64  `json:"id"`
	ApiID         string  `json:"apiId"`
	Name          string  `json:"name"`
	ImageURL      string  `json:"imageUrl"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

type LeaderboardService struct {
	artRepo     *mysql.ArtRepository
	likeRepo    *mysql.ArtLikeRepository
	libraryRepo *mysql.LibraryRepository
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		artRepo:     &mysql.ArtRepository{DB: db},
		likeRepo:    &mysql.ArtLikeRepository{DB: db},
		libraryRepo: &mysql.LibraryRepository{DB: db},
	}
}

// Artists 按作品获赞总数排名：全量取回后在内存聚合，
// 零作品的用户天然不会出现；并列按首次出现顺序保持稳定
func (s *LeaderboardService) Artists(ctx context.Context, limit int) ([]ArtistRank, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	arts, err := s.artRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(arts))
	for i := range arts {
		ids = append(ids, arts[i].ID)
	}
	counts, err := s.likeRepo.CountByArtIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	index := make(map[uint64]int)
	ranks := make([]ArtistRank, 0)
	for i := range arts {
		a := &arts[i]
		pos, ok := index[a.AuthorID]
		if !ok {
			pos = len(ranks)
			index[a.AuthorID] = pos
			rank := ArtistRank{ID: a.AuthorID}
			if a.Author != nil {
				rank.Username = a.Author.Username
			}
			ranks = append(ranks, rank)
		}
		ranks[pos].TotalDrawings++
		ranks[pos].TotalLikes += counts[a.ID]
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalLikes > ranks[j].TotalLikes
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks, nil
}

// Games 按平均评分排名：只统计有评分的库条目，无评分的游戏整个排除
func (s *LeaderboardService) Games(ctx context.Context, limit int) ([]GameRank, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := s.libraryRepo.RatedEntries(ctx)
	if err != nil {
		return nil, err
	}

	type agg struct {
		rank GameRank
		sum  int64
	}
	index := make(map[uint64]int)
	aggs := make([]agg, 0)
	for i := range entries {
		e := &entries[i]
		if e.Rating == nil {
			continue
		}
		pos, ok := index[e.GameID]
		if !ok {
			pos = len(aggs)
			index[e.GameID] = pos
			a := agg{rank: GameRank{ID: e.GameID}}
			if e.Game != nil {
				a.rank.ApiID = e.Game.ApiID
				a.rank.Name = e.Game.Name
				a.rank.ImageURL = e.Game.ImageURL
			}
			aggs = append(aggs, a)
		}
		aggs[pos].sum += int64(*e.Rating)
		aggs[pos].rank.TotalReviews++
	}

	ranks := make([]GameRank, 0, len(aggs))
	for i := range aggs {
		a := &aggs[i]
		a.rank.AverageRating = float64(a.sum) / float64(a.rank.TotalReviews)
		ranks = append(ranks, a.rank)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].AverageRating > ranks[j].AverageRating
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks, nil
}
