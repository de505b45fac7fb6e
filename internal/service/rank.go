package service

import (
	"math"
	"sort"
	"time"
)

// 排序模式
const (
	SortRecent = "recent"
	SortHot    = "hot"
	SortTop    = "top"
)

// HotScore 衰减热度分：likes / (ageHours + 2)^1.5
// 新作品分母小，同样的赞数排得更靠前
func HotScore(likes int64, createdAt, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return float64(likes) / math.Pow(ageHours+2, 1.5)
}

// HotSort 按热度分降序，分数相同保持原有相对顺序
func HotSort(items []ArtItem, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return HotScore(items[i].Likes, items[i].CreatedAt, now) >
			HotScore(items[j].Likes, items[j].CreatedAt, now)
	})
}

// TopSort 按赞数降序，稳定
func TopSort(items []ArtItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Likes > items[j].Likes
	})
}

// RecentSort 按创建时间降序，稳定
func RecentSort(items []ArtItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
