package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtUploadByURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	createGame(t, db, "3030-1", "Noita")

	item, err := svc.Upload(ctx, author.ID, "painter", "3030-1", "pixel", "https://img.test/a.png", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/a.png", item.ImageURL)
	assert.Equal(t, "painter", item.Author.Username)
	assert.Equal(t, "3030-1", item.Game.ApiID)

	// 发布记一条动态
	var acts []model.Activity
	require.NoError(t, db.Find(&acts).Error)
	require.Len(t, acts, 1)
	assert.Equal(t, "post", acts[0].Type)
}

func TestArtUploadRequiresKnownGame(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	author := createUser(t, db, "painter")

	_, err := svc.Upload(context.Background(), author.ID, "painter", "9999-0", "", "https://img.test/a.png", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrValidation))
	assert.Equal(t, "Game must be in database first.", err.Error())
}

func TestLikeUnlikeFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	fan := createUser(t, db, "fan")
	game := createGame(t, db, "3030-1", "Noita")
	art := createArt(t, db, author.ID, game.ID, time.Now())

	count, err := svc.Like(ctx, art.ID, fan.ID, "fan")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 作者收到点赞通知
	var notifs []model.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, "like", notifs[0].Type)

	// 重复点赞报冲突，计数不变
	_, err = svc.Like(ctx, art.ID, fan.ID, "fan")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConflict))
	assert.Equal(t, "Already liked", err.Error())
	var n int64
	require.NoError(t, db.Model(&model.ArtLike{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	count, err = svc.Unlike(ctx, art.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 没点过赞再取消报 404
	_, err = svc.Unlike(ctx, art.ID, fan.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Equal(t, "Not liked", err.Error())
}

func TestLikeOwnArtNoNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)

	author := createUser(t, db, "painter")
	game := createGame(t, db, "3030-1", "Noita")
	art := createArt(t, db, author.ID, game.ID, time.Now())

	_, err := svc.Like(context.Background(), art.ID, author.ID, "painter")
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestLikeMissingArt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	fan := createUser(t, db, "fan")

	_, err := svc.Like(context.Background(), 404, fan.ID, "fan")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestDeleteArtOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	other := createUser(t, db, "other")
	game := createGame(t, db, "3030-1", "Noita")
	art := createArt(t, db, author.ID, game.ID, time.Now())

	err := svc.Delete(ctx, art.ID, other.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrForbidden))
	assert.Equal(t, "You can only delete your own art", err.Error())

	require.NoError(t, svc.Delete(ctx, art.ID, author.ID))
	var n int64
	require.NoError(t, db.Model(&model.CustomArt{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

// 删图连带清掉点赞、评论和游戏库的封面引用
func TestDeleteArtCascade(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	fan := createUser(t, db, "fan")
	game := createGame(t, db, "3030-1", "Noita")
	art := createArt(t, db, author.ID, game.ID, time.Now())

	likeArt(t, db, fan.ID, art.ID)
	require.NoError(t, db.Create(&model.Comment{Content: "nice", ArtID: art.ID, AuthorID: fan.ID}).Error)
	require.NoError(t, db.Create(&model.UserGame{
		UserID:         fan.ID,
		GameID:         game.ID,
		Status:         model.StatusPlaying,
		FavoritedArtID: &art.ID,
	}).Error)

	require.NoError(t, svc.Delete(ctx, art.ID, author.ID))

	var likes, comments int64
	require.NoError(t, db.Model(&model.ArtLike{}).Where("art_id = ?", art.ID).Count(&likes).Error)
	require.NoError(t, db.Model(&model.Comment{}).Where("art_id = ?", art.ID).Count(&comments).Error)
	assert.Zero(t, likes)
	assert.Zero(t, comments)

	var entry model.UserGame
	require.NoError(t, db.Where("user_id = ?", fan.ID).First(&entry).Error)
	assert.Nil(t, entry.FavoritedArtID)
}

func TestArtDetailWithComments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArtService(db, nil)
	ctx := context.Background()

	author := createUser(t, db, "painter")
	fan := createUser(t, db, "fan")
	game := createGame(t, db, "3030-1", "Noita")
	art := createArt(t, db, author.ID, game.ID, time.Now())
	likeArt(t, db, fan.ID, art.ID)
	require.NoError(t, db.Create(&model.Comment{Content: "nice", ArtID: art.ID, AuthorID: fan.ID}).Error)

	detail, err := svc.Detail(ctx, art.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Likes)
	assert.True(t, detail.IsLiked)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "fan", detail.Comments[0].Author.Username)

	_, err = svc.Detail(ctx, 404, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}
