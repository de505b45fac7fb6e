package mysql

import (
	"context"
	"encoding/json"
	"time"

	"V_Arcade/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtLikeRepository struct {
	DB *gorm.DB
}

// Like 原子条件插入：唯一索引 (user_id, art_id) 兜底并发，
// 冲突时不报错、返回 changed=false，由业务层映射为 409
func (r *ArtLikeRepository) Like(ctx context.Context, userID, artID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "art_id"}},
			DoNothing: true,
		}).Create(&model.ArtLike{UserID: userID, ArtID: artID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "like", userID, artID)
	})
	return changed, err
}

// Unlike 删除点赞；未点过赞时 changed=false
func (r *ArtLikeRepository) Unlike(ctx context.Context, userID, artID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND art_id = ?", userID, artID).
			Delete(&model.ArtLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "unlike", userID, artID)
	})
	return changed, err
}

func (r *ArtLikeRepository) Count(ctx context.Context, artID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.ArtLike{}).
		Where("art_id = ?", artID).
		Count(&n).Error
	return n, err
}

// CountByArtIDs 批量点赞计数，artID -> count
func (r *ArtLikeRepository) CountByArtIDs(ctx context.Context, artIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(artIDs))
	if len(artIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		ArtID uint64
		N     int64
	}
	err := r.DB.WithContext(ctx).Model(&model.ArtLike{}).
		Select("art_id, COUNT(*) AS n").
		Where("art_id IN ?", artIDs).
		Group("art_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ArtID] = row.N
	}
	return counts, nil
}

// LikedSet 返回 viewer 在给定作品集合中点过赞的 artID 集合
func (r *ArtLikeRepository) LikedSet(ctx context.Context, userID uint64, artIDs []uint64) (map[uint64]bool, error) {
	liked := make(map[uint64]bool, len(artIDs))
	if userID == 0 || len(artIDs) == 0 {
		return liked, nil
	}
	var ids []uint64
	err := r.DB.WithContext(ctx).Model(&model.ArtLike{}).
		Where("user_id = ? AND art_id IN ?", userID, artIDs).
		Pluck("art_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// insertOutbox 同事务写出箱事件，供 relayer 异步投递
func insertOutbox(tx *gorm.DB, event string, actorID, subjectID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	})
	ob := &model.SocialOutbox{
		EventType: event,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
