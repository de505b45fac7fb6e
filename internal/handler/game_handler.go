package handler

import (
	"net/http"

	"V_Arcade/internal/pkg"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GameHandler struct {
	svc *service.GameService
}

func NewGameHandler(db *gorm.DB, gb *pkg.GiantBombClient) *GameHandler {
	return &GameHandler{svc: service.NewGameService(db, gb)}
}

// Search 游戏检索，代理上游
func (h *GameHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		query = c.Query("search")
	}
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}
	result, err := h.svc.Search(c.Request.Context(), query, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Detail 游戏详情
func (h *GameHandler) Detail(c *gin.Context) {
	result, err := h.svc.Detail(c.Request.Context(), c.Param("apiId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reviews 某游戏的全部评测
func (h *GameHandler) Reviews(c *gin.Context) {
	reviews, err := h.svc.Reviews(c.Request.Context(), c.Param("apiId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
