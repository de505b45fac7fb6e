package handler

import (
	"mime/multipart"
	"net/http"

	"V_Arcade/internal/middleware"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtHandler struct {
	svc  *service.ArtService
	feed *service.FeedService
}

func NewArtHandler(db *gorm.DB, uploader *pkg.CloudinaryClient) *ArtHandler {
	return &ArtHandler{
		svc:  service.NewArtService(db, uploader),
		feed: service.NewFeedService(db),
	}
}

// Popular 全站最新流，sort=hot|top 可选
func (h *ArtHandler) Popular(c *gin.Context) {
	items, err := h.feed.Popular(c.Request.Context(), middleware.UserID(c), queryInt(c, "limit", 12), c.Query("sort"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Following 关注流，需登录
func (h *ArtHandler) Following(c *gin.Context) {
	items, err := h.feed.Following(c.Request.Context(), middleware.UserID(c), queryInt(c, "limit", 12))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Upload 上传同人图：multipart 带 image 文件，或 JSON 带 imageUrl
func (h *ArtHandler) Upload(c *gin.Context) {
	var (
		apiID, tags, imageURL string
		file                  multipart.File
	)
	fh, err := c.FormFile("image")
	if err != nil {
		fh, err = c.FormFile("artFile")
	}
	if err == nil {
		apiID = c.PostForm("gameApiId")
		tags = c.PostForm("tags")
		f, ferr := fh.Open()
		if ferr != nil {
			respondError(c, ferr)
			return
		}
		defer f.Close()
		file = f
	} else {
		var req struct {
			GameApiID string `json:"gameApiId"`
			Tags      string `json:"tags"`
			ImageURL  string `json:"imageUrl"`
		}
		if berr := c.ShouldBindJSON(&req); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
			return
		}
		apiID, tags, imageURL = req.GameApiID, req.Tags, req.ImageURL
	}

	item, err := h.svc.Upload(c.Request.Context(), middleware.UserID(c), middleware.Username(c), apiID, tags, imageURL, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UploadForGame 游戏页内上传，游戏取自路径
func (h *ArtHandler) UploadForGame(c *gin.Context) {
	apiID := c.Param("apiId")
	var (
		tags, imageURL string
		file           multipart.File
	)
	fh, err := c.FormFile("image")
	if err != nil {
		fh, err = c.FormFile("artFile")
	}
	if err == nil {
		tags = c.PostForm("tags")
		f, ferr := fh.Open()
		if ferr != nil {
			respondError(c, ferr)
			return
		}
		defer f.Close()
		file = f
	} else {
		var req struct {
			Tags     string `json:"tags"`
			ImageURL string `json:"imageUrl"`
		}
		if berr := c.ShouldBindJSON(&req); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
			return
		}
		tags, imageURL = req.Tags, req.ImageURL
	}

	item, err := h.svc.Upload(c.Request.Context(), middleware.UserID(c), middleware.Username(c), apiID, tags, imageURL, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Detail 单图详情
func (h *ArtHandler) Detail(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	detail, err := h.svc.Detail(c.Request.Context(), artID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ByGame 某游戏下的同人图
func (h *ArtHandler) ByGame(c *gin.Context) {
	items, err := h.svc.ByGame(c.Request.Context(), c.Param("apiId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete 删除自己的图
func (h *ArtHandler) Delete(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), artID, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Art deleted"})
}

// Like 点赞
func (h *ArtHandler) Like(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	count, err := h.svc.Like(c.Request.Context(), artID, middleware.UserID(c), middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": count, "isLiked": true})
}

// Unlike 取消点赞
func (h *ArtHandler) Unlike(c *gin.Context) {
	artID, ok := paramUint(c, "artId")
	if !ok {
		return
	}
	count, err := h.svc.Unlike(c.Request.Context(), artID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": count, "isLiked": false})
}
