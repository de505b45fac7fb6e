package service

import (
	"context"
	"errors"
	"testing"

	"V_Arcade/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	ctx := context.Background()

	owner := createUser(t, db, "curator")
	createGame(t, db, "3030-1", "Noita")

	col, err := svc.Create(ctx, owner.ID, "Roguelikes", "the good stuff", true)
	require.NoError(t, err)

	require.NoError(t, svc.AddGame(ctx, col.ID, owner.ID, "3030-1"))

	// 重复加报冲突
	err = svc.AddGame(ctx, col.ID, owner.ID, "3030-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConflict))

	got, err := svc.Get(ctx, col.ID, 0)
	require.NoError(t, err)
	require.Len(t, got.Games, 1)
	assert.Equal(t, "Noita", got.Games[0].Game.Name)

	require.NoError(t, svc.RemoveGame(ctx, col.ID, owner.ID, "3030-1"))
	err = svc.RemoveGame(ctx, col.ID, owner.ID, "3030-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))

	require.NoError(t, svc.Delete(ctx, col.ID, owner.ID))
	_, err = svc.Get(ctx, col.ID, owner.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestCollectionOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	ctx := context.Background()

	owner := createUser(t, db, "curator")
	intruder := createUser(t, db, "intruder")
	col, err := svc.Create(ctx, owner.ID, "Mine", "", true)
	require.NoError(t, err)

	_, err = svc.Update(ctx, col.ID, intruder.ID, map[string]any{"name": "Stolen"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrForbidden))

	err = svc.Delete(ctx, col.ID, intruder.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrForbidden))
}

func TestCollectionPrivacy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	ctx := context.Background()

	owner := createUser(t, db, "curator")
	viewer := createUser(t, db, "viewer")
	_, err := svc.Create(ctx, owner.ID, "Public", "", true)
	require.NoError(t, err)
	secret, err := svc.Create(ctx, owner.ID, "Secret", "", false)
	require.NoError(t, err)

	// 非本人只看到公开合集
	list, err := svc.ListByUser(ctx, owner.ID, viewer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Public", list[0].Name)

	// 本人全量可见
	list, err = svc.ListByUser(ctx, owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// 私有合集详情对外 403
	_, err = svc.Get(ctx, secret.ID, viewer.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrForbidden))
}
