package handler

import (
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(db *gorm.DB, smtp pkg.SMTPConfig) *FollowHandler {
	return &FollowHandler{svc: service.NewFollowService(db, smtp)}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	targetID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	if err := h.svc.Follow(c.Request.Context(), middleware.UserID(c), middleware.Username(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Followed"})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	if err := h.svc.Unfollow(c.Request.Context(), middleware.UserID(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	users, err := h.svc.Followers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *FollowHandler) Following(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	users, err := h.svc.Following(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
