package models

import "time"

// RoleAdmin 唯一账号的固定角色
const RoleAdmin = "ADMIN"

// Account 博主账号表
// 本系统只有一个可登录账号，注册入口不存在
type Account struct {
	ID           uint       `gorm:"primarykey" json:"id"`                 // 主键
	Username     string     `gorm:"uniqueIndex;not null" json:"username"` // 登录名
	PasswordHash string     `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	Role         string     `gorm:"not null" json:"role"`                 // 固定为 ADMIN
	LastLoginAt  *time.Time `json:"last_login_at"`                        // 最后登录时间
	CreatedAt    time.Time  `json:"created_at"`                           // 创建时间
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}
