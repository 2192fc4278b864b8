package provider

import (
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
	"github.com/blog-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	AccountRepo   repository.AccountRepository
	PostRepo      repository.PostRepository
	GuestbookRepo repository.GuestbookRepository
	StatsRepo     repository.StatsRepository

	// Services
	AuthService      *service.AuthService
	PostService      *service.PostService
	GuestbookService *service.GuestbookService
	StatsService     *service.StatsService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 基于指定数据库连接初始化容器（测试用）
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	accountRepo := repository.NewAccountRepository(db)
	postRepo := repository.NewPostRepository(db)
	guestbookRepo := repository.NewGuestbookRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	return &Container{
		Config: cfg,

		AccountRepo:   accountRepo,
		PostRepo:      postRepo,
		GuestbookRepo: guestbookRepo,
		StatsRepo:     statsRepo,

		AuthService:      service.NewAuthService(cfg, accountRepo),
		PostService:      service.NewPostService(postRepo),
		GuestbookService: service.NewGuestbookService(guestbookRepo),
		StatsService:     service.NewStatsService(statsRepo),
	}
}
