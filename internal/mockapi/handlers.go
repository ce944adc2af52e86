package mockapi

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	mdw "quickbite-client/internal/transport/http/middleware"
	resp "quickbite-client/internal/transport/http/response"
)

// userID 从 JWT 中间件放进上下文的 uid 还原成数值主键。
func userID(c *gin.Context) int64 {
	uid := c.GetString(mdw.KeyUserID)
	id, _ := strconv.ParseInt(uid, 10, 64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp.NotFound(c, "Not found.")
		return 0, false
	}
	return id, true
}

// failRepo 仓储错误统一落到 HTTP 状态码。
func failRepo(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		resp.NotFound(c, "Not found.")
	case errors.Is(err, ErrDuplicateEmail):
		resp.Fail(c, 422, "The email has already been taken.")
	default:
		resp.Internal(c, "Server error.")
	}
}
