package models

import (
	"github.com/blog-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAccount 初始化博主账号
// 已存在账号时不做任何事；本系统不提供注册入口
func InitDefaultAccount(username, password string) error {
	var count int64
	if err := DB.Model(&Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}
	if err := DB.Create(&account).Error; err != nil {
		return err
	}

	if password == "admin" {
		logger.Warnw("default_account_created_with_default_password", "username", username)
	} else {
		logger.Infow("default_account_created", "username", username)
	}
	return nil
}
