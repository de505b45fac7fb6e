package router

import (
	"V_Arcade/internal/config"
	"V_Arcade/internal/handler"
	"V_Arcade/internal/middleware"
	"V_Arcade/internal/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
	gb := pkg.NewGiantBombClient(cfg.GiantBomb.APIKey, cfg.GiantBomb.BaseURL)
	var uploader *pkg.CloudinaryClient
	if cfg.Cloudinary.CloudName != "" {
		uploader = pkg.NewCloudinaryClient(pkg.CloudinaryConfig{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Folder:    cfg.Cloudinary.Folder,
		})
	}

	user := handler.NewUserHandler(db)
	game := handler.NewGameHandler(db, gb)
	library := handler.NewLibraryHandler(db)
	art := handler.NewArtHandler(db, uploader)
	comment := handler.NewCommentHandler(db)
	follow := handler.NewFollowHandler(db, smtpCfg)
	activity := handler.NewActivityHandler(db)
	leaderboard := handler.NewLeaderboardHandler(db)
	notification := handler.NewNotificationHandler(db)
	conversation := handler.NewConversationHandler(db)
	collection := handler.NewCollectionHandler(db)

	api := r.Group("/api")

	// 账号相关接口
	api.POST("/register", user.Register)
	api.POST("/login", user.Login)
	api.POST("/token/refresh", user.TokenRefresh)
	api.POST("/logout", middleware.AuthMiddleware(), user.Logout)

	// 游戏检索接口，无需登录
	api.GET("/games", game.Search)
	api.GET("/game/:apiId", game.Detail)
	api.GET("/game/:apiId/reviews", game.Reviews)
	api.GET("/game/:apiId/art", middleware.OptionalAuth(), art.ByGame)

	// 公开浏览接口，登录可带上 isLiked 标记
	open := api.Group("", middleware.OptionalAuth())
	{
		open.GET("/drawings/popular", art.Popular)
		open.GET("/art/:artId", art.Detail)
		open.GET("/art/:artId/comments", comment.List)
		open.GET("/users/search", user.Search)
		open.GET("/users/:userId", user.Profile)
		open.GET("/users/:userId/followers", follow.Followers)
		open.GET("/users/:userId/following", follow.Following)
		open.GET("/users/:userId/collections", collection.ListByUser)
		open.GET("/user/:userId/games", library.List)
		open.GET("/leaderboard/artists", leaderboard.Artists)
		open.GET("/leaderboard/games", leaderboard.Games)
	}

	// 登录态接口
	auth := api.Group("", middleware.AuthMiddleware())
	{
		auth.GET("/drawings/following", art.Following)
		auth.GET("/activities", activity.Feed)

		auth.POST("/art", art.Upload)
		auth.POST("/game/:apiId/art", art.UploadForGame)
		auth.DELETE("/art/:artId", art.Delete)
		auth.POST("/art/:artId/like", art.Like)
		auth.DELETE("/art/:artId/like", art.Unlike)
		auth.POST("/art/:artId/comments", comment.Create)
		auth.DELETE("/comments/:id", comment.Delete)

		auth.GET("/user/games", library.ListOwn)
		auth.POST("/user/games", library.Add)
		auth.PUT("/user/games/:apiId", library.Update)
		auth.PUT("/user/games/:apiId/favorite-art", library.Favorite)
		auth.DELETE("/user/games/:apiId", library.Remove)

		auth.POST("/users/:userId/follow", follow.Follow)
		auth.DELETE("/users/:userId/follow", follow.Unfollow)

		auth.GET("/notifications", notification.List)
		auth.GET("/notifications/unread-count", notification.UnreadCount)
		auth.PUT("/notifications/:id/read", notification.MarkRead)
		auth.PUT("/notifications/read-all", notification.MarkAllRead)

		auth.GET("/conversations", conversation.List)
		auth.POST("/conversations", conversation.Open)
		auth.GET("/conversations/:conversationId/messages", conversation.Messages)
		auth.POST("/conversations/:conversationId/messages", conversation.Send)

		auth.GET("/collections", collection.ListOwn)
		auth.POST("/collections", collection.Create)
		auth.GET("/collections/:id", collection.Get)
		auth.PUT("/collections/:id", collection.Update)
		auth.DELETE("/collections/:id", collection.Delete)
		auth.POST("/collections/:id/games", collection.AddGame)
		auth.DELETE("/collections/:id/games/:apiId", collection.RemoveGame)
	}

	return r
}
