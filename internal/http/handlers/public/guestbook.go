package public

import (
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetGuestbookEntries 获取已审核留言列表
func (h *Handler) GetGuestbookEntries(c *gin.Context) {
	entries, err := h.GuestbookService.ListApproved()
	if err != nil {
		respondError(c, response.CodeInternal, "获取留言失败", err)
		return
	}
	response.Success(c, entries)
}

// CreateGuestbookEntryRequest 创建留言请求
type CreateGuestbookEntryRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateGuestbookEntry 创建留言，无需认证
func (h *Handler) CreateGuestbookEntry(c *gin.Context) {
	var req CreateGuestbookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	entry, err := h.GuestbookService.Create(req.Nickname, req.Content)
	if err != nil {
		respondWithMappedError(c, err, guestbookCreateErrorRules, response.CodeInternal, "创建留言失败")
		return
	}
	response.Success(c, entry)
}
