package models

import "time"

// GuestbookEntry 留言板条目表
// 留言只增不改：没有更新和删除路径
type GuestbookEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`           // 主键，自增且永不复用
	Nickname  string    `gorm:"not null" json:"nickname"`       // 昵称
	Content   string    `gorm:"not null" json:"content"`        // 留言内容
	Approved  bool      `gorm:"not null;index" json:"approved"` // 审核标记，当前实现创建即通过
	CreatedAt time.Time `gorm:"index" json:"createdAt"`         // 创建时间
}

// TableName 指定表名
func (GuestbookEntry) TableName() string {
	return "guestbook_entries"
}
