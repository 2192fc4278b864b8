package author

import (
	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 作者后台接口处理器入口
// 说明：该处理器下的所有路由都要求已认证会话。
type Handler struct {
	*provider.Container
}

// New 创建作者后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}
