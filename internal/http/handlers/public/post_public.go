package public

import (
	"strconv"

	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPosts 获取已发布文章分页列表
func (h *Handler) GetPosts(c *gin.Context) {
	page, size := shared.ParsePageQuery(c)

	result, err := h.PostService.ListPublic(page, size)
	if err != nil {
		respondWithMappedError(c, err, postReadErrorRules, response.CodeInternal, "获取文章列表失败")
		return
	}
	response.Success(c, result)
}

// GetPost 获取文章详情
// 携带有效会话的作者可以读到自己的草稿，其他人只能读已发布文章
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "文章 ID 非法", nil)
		return
	}

	post, err := h.PostService.Get(h.sessionFrom(c), uint(id))
	if err != nil {
		respondWithMappedError(c, err, postReadErrorRules, response.CodeInternal, "获取文章失败")
		return
	}
	response.Success(c, post)
}

// SearchPosts 搜索文章
func (h *Handler) SearchPosts(c *gin.Context) {
	query := c.Query("q")

	posts, err := h.PostService.Search(h.sessionFrom(c), query)
	if err != nil {
		respondError(c, response.CodeInternal, "搜索文章失败", err)
		return
	}
	response.Success(c, posts)
}
