package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularFeedRecencyOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	game := createGame(t, db, "3030-1", "Noita")
	now := time.Now()
	old := createArt(t, db, author.ID, game.ID, now.Add(-48*time.Hour))
	mid := createArt(t, db, author.ID, game.ID, now.Add(-1*time.Hour))
	fresh := createArt(t, db, author.ID, game.ID, now)

	// 老图攒了最多赞，但默认排序仍按时间
	other := createUser(t, db, "fan")
	likeArt(t, db, other.ID, old.ID)
	likeArt(t, db, author.ID, old.ID)

	items, err := svc.Popular(ctx, 0, 10, "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, fresh.ID, items[0].ID)
	assert.Equal(t, mid.ID, items[1].ID)
	assert.Equal(t, old.ID, items[2].ID)
	assert.Equal(t, int64(2), items[2].Likes)

	// 匿名访问 isLiked 恒为 false
	for _, it := range items {
		assert.False(t, it.IsLiked)
	}

	// top 排序把高赞拉到前面
	items, err = svc.Popular(ctx, 0, 10, SortTop)
	require.NoError(t, err)
	assert.Equal(t, old.ID, items[0].ID)
}

func TestPopularFeedViewerLikeFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	viewer := createUser(t, db, "viewer")
	game := createGame(t, db, "3030-1", "Noita")
	a1 := createArt(t, db, author.ID, game.ID, time.Now())
	a2 := createArt(t, db, author.ID, game.ID, time.Now())
	likeArt(t, db, viewer.ID, a1.ID)

	items, err := svc.Popular(ctx, viewer.ID, 10, "")
	require.NoError(t, err)
	byID := map[uint64]ArtItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.True(t, byID[a1.ID].IsLiked)
	assert.False(t, byID[a2.ID].IsLiked)
}

func TestFollowingFeedScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db)
	ctx := context.Background()

	viewer := createUser(t, db, "viewer")
	followed := createUser(t, db, "followed")
	stranger := createUser(t, db, "stranger")
	game := createGame(t, db, "3030-1", "Noita")
	wanted := createArt(t, db, followed.ID, game.ID, time.Now())
	createArt(t, db, stranger.ID, game.ID, time.Now())

	follow(t, db, viewer.ID, followed.ID)

	items, err := svc.Following(ctx, viewer.ID, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, wanted.ID, items[0].ID)
	assert.Equal(t, "followed", items[0].Author.Username)
	assert.Equal(t, "3030-1", items[0].Game.ApiID)
}

func TestFollowingFeedEmptyWithoutFollows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db)

	viewer := createUser(t, db, "loner")
	author := createUser(t, db, "painter")
	game := createGame(t, db, "3030-1", "Noita")
	createArt(t, db, author.ID, game.ID, time.Now())

	items, err := svc.Following(context.Background(), viewer.ID, 10)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// 端到端：关注流是全站流的子集
func TestFollowingFeedSubsetOfPopular(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db)
	ctx := context.Background()

	viewer := createUser(t, db, "viewer")
	game := createGame(t, db, "3030-1", "Noita")
	for i := 0; i < 3; i++ {
		author := createUser(t, db, "author"+string(rune('a'+i)))
		createArt(t, db, author.ID, game.ID, time.Now())
		if i < 2 {
			follow(t, db, viewer.ID, author.ID)
		}
	}

	popular, err := svc.Popular(ctx, viewer.ID, 100, "")
	require.NoError(t, err)
	followingFeed, err := svc.Following(ctx, viewer.ID, 100)
	require.NoError(t, err)

	assert.Len(t, popular, 3)
	assert.Len(t, followingFeed, 2)
	all := map[uint64]bool{}
	for _, it := range popular {
		all[it.ID] = true
	}
	for _, it := range followingFeed {
		assert.True(t, all[it.ID])
	}
}
