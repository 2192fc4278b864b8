package author

import (
	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser 获取当前登录身份
func (h *Handler) GetCurrentUser(c *gin.Context) {
	session := shared.SessionFromContext(c)
	if session == nil {
		respondError(c, response.CodeUnauthorized, "未认证", nil)
		return
	}
	response.Success(c, session)
}

// GetStats 获取作者统计
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.StatsService.Get(shared.SessionFromContext(c))
	if err != nil {
		respondWithMappedError(c, err, postWriteErrorRules, response.CodeInternal, "获取统计失败")
		return
	}
	response.Success(c, stats)
}
