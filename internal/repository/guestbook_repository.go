package repository

import (
	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// GuestbookRepository 留言板数据访问接口
type GuestbookRepository interface {
	ListApproved() ([]models.GuestbookEntry, error)
	Create(entry *models.GuestbookEntry) error
	Count() (int64, error)
}

// GormGuestbookRepository GORM 实现
type GormGuestbookRepository struct {
	db *gorm.DB
}

// NewGuestbookRepository 创建留言板仓库
func NewGuestbookRepository(db *gorm.DB) *GormGuestbookRepository {
	return &GormGuestbookRepository{db: db}
}

// ListApproved 获取已审核留言，按最近优先排序
func (r *GormGuestbookRepository) ListApproved() ([]models.GuestbookEntry, error) {
	entries := make([]models.GuestbookEntry, 0)
	err := r.db.
		Where("approved = ?", true).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Create 创建留言
func (r *GormGuestbookRepository) Create(entry *models.GuestbookEntry) error {
	return r.db.Create(entry).Error
}

// Count 统计留言总数
func (r *GormGuestbookRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.GuestbookEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
