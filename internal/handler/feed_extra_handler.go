package handler

import (
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityHandler 关注动态流
type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{svc: service.NewActivityService(db)}
}

func (h *ActivityHandler) Feed(c *gin.Context) {
	items, err := h.svc.Feed(c.Request.Context(), middleware.UserID(c), queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// LeaderboardHandler 画手榜和游戏榜
type LeaderboardHandler struct {
	svc *service.LeaderboardService
}

func NewLeaderboardHandler(db *gorm.DB) *LeaderboardHandler {
	return &LeaderboardHandler{svc: service.NewLeaderboardService(db)}
}

func (h *LeaderboardHandler) Artists(c *gin.Context) {
	ranks, err := h.svc.Artists(c.Request.Context(), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranks)
}

func (h *LeaderboardHandler) Games(c *gin.Context) {
	ranks, err := h.svc.Games(c.Request.Context(), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranks)
}
