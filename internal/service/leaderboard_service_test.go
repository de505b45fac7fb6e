package service

import (
	"context"
	"testing"
	"time"

	"V_Arcade/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistLeaderboard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	ctx := context.Background()

	prolific := createUser(t, db, "prolific")
	modest := createUser(t, db, "modest")
	createUser(t, db, "lurker") // 零作品，不应上榜
	fan := createUser(t, db, "fan")
	game := createGame(t, db, "3030-1", "Noita")

	a1 := createArt(t, db, prolific.ID, game.ID, time.Now())
	a2 := createArt(t, db, prolific.ID, game.ID, time.Now())
	b1 := createArt(t, db, modest.ID, game.ID, time.Now())

	likeArt(t, db, fan.ID, a1.ID)
	likeArt(t, db, modest.ID, a1.ID)
	likeArt(t, db, fan.ID, a2.ID)
	likeArt(t, db, fan.ID, b1.ID)

	ranks, err := svc.Artists(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranks, 2)

	assert.Equal(t, "prolific", ranks[0].Username)
	assert.Equal(t, int64(3), ranks[0].TotalLikes)
	assert.Equal(t, int64(2), ranks[0].TotalDrawings)
	assert.Equal(t, "modest", ranks[1].Username)
	assert.Equal(t, int64(1), ranks[1].TotalLikes)
}

func TestArtistLeaderboardZeroLikesStillRanked(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	painter := createUser(t, db, "painter")
	game := createGame(t, db, "3030-1", "Noita")
	createArt(t, db, painter.ID, game.ID, time.Now())

	ranks, err := svc.Artists(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	assert.Equal(t, int64(0), ranks[0].TotalLikes)
	assert.Equal(t, int64(1), ranks[0].TotalDrawings)
}

func TestGameLeaderboardAverages(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	ctx := context.Background()

	u1 := createUser(t, db, "alice")
	u2 := createUser(t, db, "bob")
	hit := createGame(t, db, "3030-1", "Noita")
	meh := createGame(t, db, "3030-2", "Filler")
	unrated := createGame(t, db, "3030-3", "Silent")

	rate := func(userID, gameID uint64, rating int) {
		r := rating
		require.NoError(t, db.Create(&model.UserGame{
			UserID: userID,
			GameID: gameID,
			Status: model.StatusCompleted,
			Rating: &r,
		}).Error)
	}
	rate(u1.ID, hit.ID, 5)
	rate(u2.ID, hit.ID, 4)
	rate(u1.ID, meh.ID, 2)
	// 入库但没评分，不参与均分
	require.NoError(t, db.Create(&model.UserGame{
		UserID: u2.ID, GameID: unrated.ID, Status: model.StatusBacklog,
	}).Error)

	ranks, err := svc.Games(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranks, 2)

	assert.Equal(t, "Noita", ranks[0].Name)
	assert.InDelta(t, 4.5, ranks[0].AverageRating, 0.0001)
	assert.Equal(t, int64(2), ranks[0].TotalReviews)
	assert.Equal(t, "Filler", ranks[1].Name)
	assert.InDelta(t, 2.0, ranks[1].AverageRating, 0.0001)
}
