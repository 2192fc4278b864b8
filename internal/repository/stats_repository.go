package repository

import (
	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// StatsRepository 作者统计聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type StatsRepository interface {
	GetOverview() (StatsOverviewRow, error)
}

// StatsOverviewRow 作者统计原始结果
type StatsOverviewRow struct {
	TotalPosts       int64
	PublishedPosts   int64
	DraftPosts       int64
	GuestbookEntries int64
}

// GormStatsRepository GORM 实现
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetOverview 统计文章与留言总量
func (r *GormStatsRepository) GetOverview() (StatsOverviewRow, error) {
	var row StatsOverviewRow
	if err := r.db.Model(&models.Post{}).Count(&row.TotalPosts).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Post{}).
		Where("status = ?", models.PostStatusPublished).
		Count(&row.PublishedPosts).Error; err != nil {
		return row, err
	}
	row.DraftPosts = row.TotalPosts - row.PublishedPosts
	if err := r.db.Model(&models.GuestbookEntry{}).Count(&row.GuestbookEntries).Error; err != nil {
		return row, err
	}
	return row, nil
}
