package service

import (
	"testing"
	"time"

	"V_Arcade/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 内存库，结构和生产一致
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Game{},
		&model.UserGame{},
		&model.CustomArt{},
		&model.ArtLike{},
		&model.Comment{},
		&model.Follow{},
		&model.Conversation{},
		&model.Message{},
		&model.Notification{},
		&model.Activity{},
		&model.GameCollection{},
		&model.CollectionGame{},
		&model.SocialOutbox{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@test.local",
		Password: "hashed",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createGame(t *testing.T, db *gorm.DB, apiID, name string) *model.Game {
	t.Helper()
	g := &model.Game{ApiID: apiID, Name: name}
	require.NoError(t, db.Create(g).Error)
	return g
}

func createArt(t *testing.T, db *gorm.DB, authorID, gameID uint64, createdAt time.Time) *model.CustomArt {
	t.Helper()
	a := &model.CustomArt{
		ImageURL:  "https://img.test/art.png",
		GameID:    gameID,
		AuthorID:  authorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func likeArt(t *testing.T, db *gorm.DB, userID, artID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&model.ArtLike{UserID: userID, ArtID: artID}).Error)
}

func follow(t *testing.T, db *gorm.DB, followerID, followingID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Follow{FollowerID: followerID, FollowingID: followingID}).Error)
}
