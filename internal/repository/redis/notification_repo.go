package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UnreadCountPrefix = "notify:unread"
	UnreadCountExpire = 60 * time.Second // 轮询场景下短 TTL 足够
)

// NotificationCache 未读数缓存：读侧回填，写侧删 Key 交给下次读重建
type NotificationCache struct{}

func NewNotificationCache() *NotificationCache {
	return &NotificationCache{}
}

func unreadKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", UnreadCountPrefix, userID)
}

// GetUnread 命中返回 (count, true)；miss 返回 (0, false)
func (c *NotificationCache) GetUnread(ctx context.Context, userID uint64) (int64, bool, error) {
	v, err := Client.Get(ctx, unreadKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (c *NotificationCache) SetUnread(ctx context.Context, userID uint64, count int64) error {
	return Client.Set(ctx, unreadKey(userID), count, UnreadCountExpire).Err()
}

// Invalidate 通知有写入或已读变更时删 Key
func (c *NotificationCache) Invalidate(ctx context.Context, userID uint64) error {
	return Client.Del(ctx, unreadKey(userID)).Err()
}
