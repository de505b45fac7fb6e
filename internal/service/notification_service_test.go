package service

import (
	"context"
	"errors"
	"testing"

	"V_Arcade/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	other := createUser(t, db, "bob")

	require.NoError(t, svc.Push(ctx, user.ID, "like", "bob liked your art", "/art/1"))
	require.NoError(t, svc.Push(ctx, user.ID, "follow", "bob started following you", "/user/bob"))
	require.NoError(t, svc.Push(ctx, other.ID, "comment", "alice commented", "/art/2"))

	n, err := svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := svc.List(ctx, user.ID, 50)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.MarkRead(ctx, list[0].ID, user.ID))
	n, err = svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, svc.MarkAllRead(ctx, user.ID))
	n, err = svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// 别人的未读数不受影响
	n, err = svc.UnreadCount(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMarkReadWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	intruder := createUser(t, db, "eve")
	require.NoError(t, svc.Push(ctx, user.ID, "like", "x", ""))

	list, err := svc.List(ctx, user.ID, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = svc.MarkRead(ctx, list[0].ID, intruder.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestActivityFeedScopedToFollowees(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityService(db)
	ctx := context.Background()

	viewer := createUser(t, db, "viewer")
	followed := createUser(t, db, "followed")
	stranger := createUser(t, db, "stranger")
	follow(t, db, viewer.ID, followed.ID)

	require.NoError(t, svc.Record(ctx, followed.ID, "post", "followed posted new art", "/art/1"))
	require.NoError(t, svc.Record(ctx, stranger.ID, "post", "stranger posted new art", "/art/2"))

	feed, err := svc.Feed(ctx, viewer.ID, 50)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "followed", feed[0].User.Username)
	assert.Equal(t, "post", feed[0].Type)
}

func TestActivityFeedEmptyWithoutFollows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityService(db)

	viewer := createUser(t, db, "loner")
	other := createUser(t, db, "other")
	require.NoError(t, svc.Record(context.Background(), other.ID, "post", "x", ""))

	feed, err := svc.Feed(context.Background(), viewer.ID, 50)
	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}
