package middleware

import (
	"net/http"
	"strings"

	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthMiddleware 强制登录：解析 Bearer token，redis 校验单点登录
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		// redis校验是否是正确的token，后登录踢前登录
		if redis.Client != nil {
			userRep := &redis.UserRepository{}
			originToken, rerr := userRep.GetUserToken(claims.UserID)
			if rerr != nil || originToken != tokenStr {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Account has been logged in elsewhere"})
				c.Abort()
				return
			}
			// 校验通过后更新过期时间
			if rerr = userRep.ExtendUserToken(claims.UserID); rerr != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": rerr.Error()})
				return
			}
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth 可选登录：带合法 token 则注入身份，否则按匿名放行
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr != "" {
			if claims, err := pkg.ParseAccess(tokenStr); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextUsernameKey, claims.Username)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// UserID 取当前登录用户，匿名返回 0
func UserID(c *gin.Context) uint64 {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint64)
	return id
}

// Username 取当前登录用户名
func Username(c *gin.Context) string {
	v, ok := c.Get(ContextUsernameKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
