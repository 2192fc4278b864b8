package public

import (
	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/provider"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 前台公开接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// sessionFrom 尝试解析请求携带的会话，公开读路径用它区分作者与访客
func (h *Handler) sessionFrom(c *gin.Context) *service.Session {
	return h.AuthService.Validate(shared.BearerToken(c))
}
