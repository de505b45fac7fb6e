package handler

import (
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CollectionHandler struct {
	svc *service.CollectionService
}

func NewCollectionHandler(db *gorm.DB) *CollectionHandler {
	return &CollectionHandler{svc: service.NewCollectionService(db)}
}

// CollectionReq 创建/更新请求体
type CollectionReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var req CollectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Collection name is required"})
		return
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	col, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), req.Name, req.Description, isPublic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// ListOwn 自己的全部合集
func (h *CollectionHandler) ListOwn(c *gin.Context) {
	userID := middleware.UserID(c)
	list, err := h.svc.ListByUser(c.Request.Context(), userID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListByUser 某用户的合集，非本人只见公开
func (h *CollectionHandler) ListByUser(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	list, err := h.svc.ListByUser(c.Request.Context(), userID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	col, err := h.svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req CollectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body"})
		return
	}
	values := map[string]any{}
	if req.Name != "" {
		values["name"] = req.Name
	}
	if req.Description != "" {
		values["description"] = req.Description
	}
	if req.IsPublic != nil {
		values["is_public"] = *req.IsPublic
	}
	col, err := h.svc.Update(c.Request.Context(), id, middleware.UserID(c), values)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

func (h *CollectionHandler) AddGame(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		ApiID string `json:"apiId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ApiID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Game apiId is required"})
		return
	}
	if err := h.svc.AddGame(c.Request.Context(), id, middleware.UserID(c), req.ApiID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Game added to collection"})
}

func (h *CollectionHandler) RemoveGame(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveGame(c.Request.Context(), id, middleware.UserID(c), c.Param("apiId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game removed from collection"})
}
