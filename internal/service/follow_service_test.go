package service

import (
	"context"
	"errors"
	"testing"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFollowService(db, pkg.SMTPConfig{})
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, "alice", bob.ID))

	// 被关注者收到通知
	var notifs []model.Notification
	require.NoError(t, db.Where("user_id = ?", bob.ID).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, "follow", notifs[0].Type)
	assert.Contains(t, notifs[0].Content, "alice")

	// 出箱事件已落库
	var events []model.SocialOutbox
	require.NoError(t, db.Where("event_type = ?", "follow").Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, alice.ID, events[0].ActorID)
	assert.Equal(t, bob.ID, events[0].SubjectID)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	following, err := svc.Following(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFollowService(db, pkg.SMTPConfig{})
	alice := createUser(t, db, "alice")

	err := svc.Follow(context.Background(), alice.ID, "alice", alice.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrValidation))
	assert.Equal(t, "Cannot follow yourself.", err.Error())
}

func TestFollowDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFollowService(db, pkg.SMTPConfig{})
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, "alice", bob.ID))
	err := svc.Follow(ctx, alice.ID, "alice", bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConflict))
	assert.Equal(t, "Already following.", err.Error())

	// 重复关注不产生第二条边
	var n int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestFollowMissingTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFollowService(db, pkg.SMTPConfig{})
	alice := createUser(t, db, "alice")

	err := svc.Follow(context.Background(), alice.ID, "alice", 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestUnfollowNotFollowing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFollowService(db, pkg.SMTPConfig{})
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	err := svc.Unfollow(context.Background(), alice.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}
