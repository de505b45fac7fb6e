package handler

import (
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LibraryHandler struct {
	svc *service.LibraryService
}

func NewLibraryHandler(db *gorm.DB) *LibraryHandler {
	return &LibraryHandler{svc: service.NewLibraryService(db)}
}

// AddReq 入库请求体
type AddReq struct {
	Game   service.GameInput `json:"game"`
	Status string            `json:"status"`
}

// Add 保存游戏到自己的库
func (h *LibraryHandler) Add(c *gin.Context) {
	var req AddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Game apiId and name are required"})
		return
	}
	entry, err := h.svc.Add(c.Request.Context(), middleware.UserID(c), req.Game, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update 更新状态、评分或评测
func (h *LibraryHandler) Update(c *gin.Context) {
	var req service.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body"})
		return
	}
	entry, err := h.svc.Update(c.Request.Context(), middleware.UserID(c), c.Param("apiId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Favorite 设置条目封面图，artId 为 0 清除
func (h *LibraryHandler) Favorite(c *gin.Context) {
	var req struct {
		ArtID uint64 `json:"artId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body"})
		return
	}
	entry, err := h.svc.Favorite(c.Request.Context(), middleware.UserID(c), c.Param("apiId"), req.ArtID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Remove 移出游戏库
func (h *LibraryHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), middleware.UserID(c), c.Param("apiId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game removed from library"})
}

// List 某用户的游戏库，任何人可见
func (h *LibraryHandler) List(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	page, err := h.svc.List(c.Request.Context(), userID,
		c.DefaultQuery("filterBy", "all"),
		c.Query("sortBy"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListOwn 自己的游戏库
func (h *LibraryHandler) ListOwn(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), middleware.UserID(c),
		c.DefaultQuery("filterBy", "all"),
		c.Query("sortBy"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
