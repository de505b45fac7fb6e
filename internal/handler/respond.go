package handler

import (
	"net/http"
	"strconv"

	"V_Arcade/internal/pkg"

	"github.com/gin-gonic/gin"
)

// respondError 业务错误统一映射成 {message: ...}
func respondError(c *gin.Context, err error) {
	status := pkg.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Something went wrong"
	}
	c.JSON(status, gin.H{"message": msg})
}

func paramUint(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
