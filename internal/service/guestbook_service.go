package service

import (
	"strings"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
)

// GuestbookService 留言板业务服务
// 留言是公开写入面：创建不需要认证
type GuestbookService struct {
	repo repository.GuestbookRepository
}

// NewGuestbookService 创建留言板服务
func NewGuestbookService(repo repository.GuestbookRepository) *GuestbookService {
	return &GuestbookService{repo: repo}
}

// ListApproved 获取已审核留言，最近优先
func (s *GuestbookService) ListApproved() ([]models.GuestbookEntry, error) {
	return s.repo.ListApproved()
}

// Create 创建留言
// 当前没有审核队列，创建即通过；审核标记保留在契约里
func (s *GuestbookService) Create(nickname, content string) (*models.GuestbookEntry, error) {
	nickname = strings.TrimSpace(nickname)
	content = strings.TrimSpace(content)
	if nickname == "" {
		return nil, ErrNicknameRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}

	entry := models.GuestbookEntry{
		Nickname: nickname,
		Content:  content,
		Approved: true,
	}
	if err := s.repo.Create(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
