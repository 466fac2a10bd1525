package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxKeyRequestID 请求 ID 的上下文键
const CtxKeyRequestID = "request_id"

// HeaderRequestID 请求 ID 的响应头
const HeaderRequestID = "X-Request-ID"

// RequestID 为每个请求生成 UUID，透传调用方自带的 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxKeyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
