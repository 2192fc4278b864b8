package author

import (
	"strconv"

	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetMyPosts 获取作者全部文章分页列表（含草稿）
func (h *Handler) GetMyPosts(c *gin.Context) {
	page, size := shared.ParsePageQuery(c)

	result, err := h.PostService.ListMine(shared.SessionFromContext(c), page, size)
	if err != nil {
		respondWithMappedError(c, err, postWriteErrorRules, response.CodeInternal, "获取文章列表失败")
		return
	}
	response.Success(c, result)
}

// CreatePostRequest 创建文章请求
// summary/status 缺省时由服务端补全
type CreatePostRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Summary *string `json:"summary"`
	Status  *string `json:"status"`
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	post, err := h.PostService.Create(shared.SessionFromContext(c), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
		Status:  req.Status,
	})
	if err != nil {
		respondWithMappedError(c, err, postWriteErrorRules, response.CodeInternal, "创建文章失败")
		return
	}
	response.Success(c, post)
}

// UpdatePostRequest 更新文章请求，仅合并提供的字段
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`
	Status  *string `json:"status"`
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "文章 ID 非法", nil)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	post, err := h.PostService.Update(shared.SessionFromContext(c), uint(id), service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
		Status:  req.Status,
	})
	if err != nil {
		respondWithMappedError(c, err, postWriteErrorRules, response.CodeInternal, "更新文章失败")
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章并返回删除前的记录
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "文章 ID 非法", nil)
		return
	}

	post, err := h.PostService.Delete(shared.SessionFromContext(c), uint(id))
	if err != nil {
		respondWithMappedError(c, err, postWriteErrorRules, response.CodeInternal, "删除文章失败")
		return
	}
	response.Success(c, post)
}
