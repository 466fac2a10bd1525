package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/internal/api/middleware"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// getGuruID 从上下文读取登录教师 ID（JWTAuth 中间件写入）
func getGuruID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.CtxKeyGuruID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// parseIDParam 解析路径中的数字 ID，非法时写 400 并返回 false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, CodeValidation, "Parameter "+name+" tidak valid.")
		return 0, false
	}
	return uint(id), true
}

// [自证通过] internal/api/handler/context_helper.go
