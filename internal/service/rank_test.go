package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHotScore(t *testing.T) {
	now := time.Now()

	// 刚发布：10 / 2^1.5
	score := HotScore(10, now, now)
	assert.InDelta(t, 10.0/2.828427, score, 0.001)

	// 同样赞数，越老分越低
	older := HotScore(10, now.Add(-24*time.Hour), now)
	assert.Less(t, older, score)

	// 零赞恒为零
	assert.Zero(t, HotScore(0, now.Add(-5*time.Hour), now))

	// 时钟偏移导致的未来时间按 0 小时算
	future := HotScore(10, now.Add(time.Hour), now)
	assert.InDelta(t, score, future, 0.0001)
}

func TestHotSortOrder(t *testing.T) {
	now := time.Now()
	items := []ArtItem{
		{ID: 1, Likes: 100, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 2, Likes: 10, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 3, Likes: 0, CreatedAt: now},
	}
	HotSort(items, now)

	// 新作少量赞胜过老作大量赞：100/74^1.5 ≈ 0.157 < 10/3^1.5 ≈ 1.92
	assert.Equal(t, uint64(2), items[0].ID)
	assert.Equal(t, uint64(1), items[1].ID)
	assert.Equal(t, uint64(3), items[2].ID)
}

func TestHotSortStableTies(t *testing.T) {
	now := time.Now()
	created := now.Add(-2 * time.Hour)
	items := []ArtItem{
		{ID: 1, Likes: 5, CreatedAt: created},
		{ID: 2, Likes: 5, CreatedAt: created},
		{ID: 3, Likes: 5, CreatedAt: created},
	}
	HotSort(items, now)

	// 分数全同，保持输入顺序
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{items[0].ID, items[1].ID, items[2].ID})
}

func TestTopSort(t *testing.T) {
	items := []ArtItem{
		{ID: 1, Likes: 3},
		{ID: 2, Likes: 7},
		{ID: 3, Likes: 7},
		{ID: 4, Likes: 1},
	}
	TopSort(items)

	assert.Equal(t, uint64(2), items[0].ID)
	assert.Equal(t, uint64(3), items[1].ID) // 同赞数保持先后
	assert.Equal(t, uint64(1), items[2].ID)
	assert.Equal(t, uint64(4), items[3].ID)
}

func TestRecentSort(t *testing.T) {
	now := time.Now()
	items := []ArtItem{
		{ID: 1, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: now.Add(-1 * time.Hour)},
	}
	RecentSort(items)
	assert.Equal(t, []uint64{2, 3, 1}, []uint64{items[0].ID, items[1].ID, items[2].ID})
}
