package shared

import (
	"strings"

	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionContextKey 鉴权中间件写入会话的上下文键
const SessionContextKey = "session"

// BearerToken 从 Authorization 头提取 bearer token，没有时返回空串
func BearerToken(c *gin.Context) string {
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

// SessionFromContext 读取鉴权中间件写入的会话，未认证时返回 nil
func SessionFromContext(c *gin.Context) *service.Session {
	value, ok := c.Get(SessionContextKey)
	if !ok {
		return nil
	}
	session, ok := value.(*service.Session)
	if !ok {
		return nil
	}
	return session
}
