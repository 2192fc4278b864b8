package models

import "time"

// 文章状态枚举
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
)

// Post 文章表
// 字段命名沿用前端既有契约（camelCase）
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`         // 主键，自增且永不复用
	Title     string    `gorm:"not null" json:"title"`        // 标题
	Content   string    `gorm:"not null" json:"content"`      // 正文
	Summary   string    `json:"summary"`                      // 摘要，创建时缺省则从正文截取
	Author    string    `gorm:"not null;index" json:"author"` // 作者（创建会话的账号）
	Status    string    `gorm:"not null;index" json:"status"` // DRAFT / PUBLISHED
	CreatedAt time.Time `gorm:"index" json:"createdAt"`       // 创建时间，创建后不变
	UpdatedAt time.Time `json:"updatedAt"`                    // 每次变更刷新
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// IsValidPostStatus 校验文章状态取值
func IsValidPostStatus(status string) bool {
	return status == PostStatusDraft || status == PostStatusPublished
}
