package handler

import (
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{svc: service.NewCommentService(db)}
}

func (h *CommentHandler) List(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	comments, err := h.svc.List(c.Request.Context(), artID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment content is required"})
		return
	}
	comment, err := h.svc.Create(c.Request.Context(), artID, middleware.UserID(c), middleware.Username(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), commentID, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
