package service

import (
	"strings"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
)

// 摘要缺省时从正文截取的最大长度（按字符计）
const summaryMaxRunes = 120

// PostService 文章业务服务
// 唯一允许咨询权限判定的门面：未认证的写操作、非作者的草稿读取都在这里拦截
type PostService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput 创建文章输入
// Summary/Status 用指针区分"未提供"与"空值"
type CreatePostInput struct {
	Title   string
	Content string
	Summary *string
	Status  *string
}

// UpdatePostInput 更新文章输入，仅合并提供的字段
// ID、作者、创建时间不可变
type UpdatePostInput struct {
	Title   *string
	Content *string
	Summary *string
	Status  *string
}

// PageResult 分页结果
// 字段形状沿用前端既有契约
type PageResult struct {
	Content       []models.Post `json:"content"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int64         `json:"totalPages"`
	Number        int           `json:"number"`
	Size          int           `json:"size"`
	First         bool          `json:"first"`
	Last          bool          `json:"last"`
}

// ListPublic 获取已发布文章分页列表
// page 从 0 开始；size <= 0 或 page < 0 拒绝
func (s *PostService) ListPublic(page, size int) (*PageResult, error) {
	return s.list(page, size, models.PostStatusPublished)
}

// ListMine 获取作者全部文章（含草稿）分页列表
func (s *PostService) ListMine(session *Session, page, size int) (*PageResult, error) {
	if !CanAccessAuthorArea(session) {
		return nil, ErrUnauthorized
	}
	return s.list(page, size, "")
}

func (s *PostService) list(page, size int, status string) (*PageResult, error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPage
	}

	posts, total, err := s.repo.List(repository.PostListFilter{
		Page:   page,
		Size:   size,
		Status: status,
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(size) - 1) / int64(size)
	return &PageResult{
		Content:       posts,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
		First:         page == 0,
		Last:          int64(page*size+size) >= total,
	}, nil
}

// Get 获取文章详情
// 草稿对非作者按不存在处理，避免暴露草稿 ID
func (s *PostService) Get(session *Session, id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil || !CanRead(session, post) {
		return nil, ErrNotFound
	}
	return post, nil
}

// Search 搜索文章
// 标题/正文/摘要的大小写不敏感子串匹配，最近优先排序；
// 空查询返回全部可见文章（与既有行为一致，见 DESIGN.md）
func (s *PostService) Search(session *Session, query string) ([]models.Post, error) {
	status := models.PostStatusPublished
	if CanAccessAuthorArea(session) {
		status = ""
	}
	posts, _, err := s.repo.List(repository.PostListFilter{
		Status: status,
		Search: query,
	})
	return posts, err
}

// Create 创建文章
// 需要已认证会话；状态缺省为 PUBLISHED，摘要缺省从正文截取
func (s *PostService) Create(session *Session, input CreatePostInput) (*models.Post, error) {
	if !CanAccessAuthorArea(session) {
		return nil, ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}

	status := models.PostStatusPublished
	if input.Status != nil {
		status = *input.Status
		if !models.IsValidPostStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	summary := ""
	if input.Summary != nil {
		summary = strings.TrimSpace(*input.Summary)
	}
	if summary == "" {
		summary = deriveSummary(content)
	}

	post := models.Post{
		Title:   title,
		Content: content,
		Summary: summary,
		Author:  session.Username,
		Status:  status,
	}
	if err := s.repo.Create(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 更新文章，仅合并提供的字段
func (s *PostService) Update(session *Session, id uint, input UpdatePostInput) (*models.Post, error) {
	if !CanAccessAuthorArea(session) {
		return nil, ErrUnauthorized
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !CanWrite(session, post.Author) {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		post.Title = title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, ErrContentRequired
		}
		post.Content = content
	}
	if input.Status != nil {
		if !models.IsValidPostStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		post.Status = *input.Status
	}
	if input.Summary != nil {
		summary := strings.TrimSpace(*input.Summary)
		if summary == "" {
			summary = deriveSummary(post.Content)
		}
		post.Summary = summary
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 删除文章并返回删除前的记录
func (s *PostService) Delete(session *Session, id uint) (*models.Post, error) {
	if !CanAccessAuthorArea(session) {
		return nil, ErrUnauthorized
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !CanWrite(session, post.Author) {
		return nil, ErrForbidden
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, ErrNotFound
	}
	return deleted, nil
}

// deriveSummary 从正文截取摘要
func deriveSummary(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryMaxRunes {
		return content
	}
	return string(runes[:summaryMaxRunes]) + "..."
}
