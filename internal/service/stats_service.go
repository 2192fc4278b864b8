package service

import "github.com/blog-next/internal/repository"

// AuthorStats 作者统计
type AuthorStats struct {
	TotalPosts       int64 `json:"totalPosts"`
	PublishedPosts   int64 `json:"publishedPosts"`
	DraftPosts       int64 `json:"draftPosts"`
	GuestbookEntries int64 `json:"guestbookEntries"`
}

// StatsService 作者统计服务
type StatsService struct {
	repo repository.StatsRepository
}

// NewStatsService 创建统计服务
func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Get 获取作者统计，需要已认证会话
func (s *StatsService) Get(session *Session) (*AuthorStats, error) {
	if !CanAccessAuthorArea(session) {
		return nil, ErrUnauthorized
	}
	row, err := s.repo.GetOverview()
	if err != nil {
		return nil, err
	}
	return &AuthorStats{
		TotalPosts:       row.TotalPosts,
		PublishedPosts:   row.PublishedPosts,
		DraftPosts:       row.DraftPosts,
		GuestbookEntries: row.GuestbookEntries,
	}, nil
}
