package mysql

import (
	"context"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

// Follow 原子条件插入关注边，重复关注返回 changed=false
func (r *FollowRepository) Follow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).Create(&model.Follow{FollowerID: followerID, FollowingID: followingID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "follow", followerID, followingID)
	})
	return changed, err
}

// Unfollow 删除关注边；本就未关注时 changed=false
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&model.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "unfollow", followerID, followingID)
	})
	return changed, err
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// FollowingIDs 关注集合解析，动态流和关注流都从这里出发
func (r *FollowRepository) FollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uint64) ([]model.Follow, error) {
	var rows []model.Follow
	err := r.DB.WithContext(ctx).
		Where("follower_id = ?", userID).
		Preload("Following").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uint64) ([]model.Follow, error) {
	var rows []model.Follow
	err := r.DB.WithContext(ctx).
		Where("following_id = ?", userID).
		Preload("Follower").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// Counts 关注数 / 粉丝数
func (r *FollowRepository) Counts(ctx context.Context, userID uint64) (following int64, followers int64, err error) {
	if err = r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&following).Error; err != nil {
		return
	}
	err = r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", userID).
		Count(&followers).Error
	return
}
