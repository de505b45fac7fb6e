package handler

import (
	"net/http"
	"strconv"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConversationHandler struct {
	svc *service.ConversationService
}

func NewConversationHandler(db *gorm.DB) *ConversationHandler {
	return &ConversationHandler{svc: service.NewConversationService(db)}
}

func (h *ConversationHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Open 打开与某用户的会话，不存在则创建
func (h *ConversationHandler) Open(c *gin.Context) {
	var req struct {
		UserID uint64 `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId is required"})
		return
	}
	conv, err := h.svc.Open(c.Request.Context(), middleware.UserID(c), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// Messages 拉取消息，since 用于轮询增量
func (h *ConversationHandler) Messages(c *gin.Context) {
	convID, ok := paramUint(c, "conversationId")
	if !ok {
		return
	}
	since, _ := strconv.ParseUint(c.Query("since"), 10, 64)
	msgs, err := h.svc.Messages(c.Request.Context(), convID, middleware.UserID(c), since)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *ConversationHandler) Send(c *gin.Context) {
	convID, ok := paramUint(c, "conversationId")
	if !ok {
		return
	}
	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message content or image is required"})
		return
	}
	msg, err := h.svc.Send(c.Request.Context(), convID, middleware.UserID(c), req.Content, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
