package service

import (
	"context"
	"errors"
	"testing"

	"V_Arcade/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@test.local", "alice", "hunter22"))

	result, err := svc.Login(ctx, "alice@test.local", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.Refresh)

	// 错密码
	_, err = svc.Login(ctx, "alice@test.local", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrUnauthenticated))

	// 不存在的账号报同一个错，不泄露是否注册过
	_, err = svc.Login(ctx, "nobody@test.local", "hunter22")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrUnauthenticated))
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	err := svc.Register(context.Background(), "", "alice", "pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrValidation))
	assert.Equal(t, "All fields are required", err.Error())
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@test.local", "alice", "pw"))

	err := svc.Register(ctx, "alice@test.local", "someone", "pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConflict))

	err = svc.Register(ctx, "other@test.local", "alice", "pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConflict))
}

func TestUserSearchExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	me := createUser(t, db, "artlover")
	createUser(t, db, "artfan")
	createUser(t, db, "gamer")

	users, err := svc.Search(ctx, "art", me.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "artfan", users[0].Username)

	// 空查询返回空列表
	users, err = svc.Search(ctx, "", me.ID)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner")
	fan := createUser(t, db, "fan")
	follow(t, db, fan.ID, owner.ID)

	p, err := svc.GetProfile(ctx, "owner", fan.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, p.ID)
	assert.Equal(t, int64(1), p.FollowersCount)
	assert.Equal(t, int64(0), p.FollowingCount)
	require.Len(t, p.Followers, 1)
	assert.Equal(t, "fan", p.Followers[0].Username)
	assert.True(t, p.IsFollowing)

	_, err = svc.GetProfile(ctx, "ghost", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}
