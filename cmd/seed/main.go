package main

import (
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
)

// 示例内容播种器：向数据库写入演示文章与留言。
// 常驻内存模式下意义不大，主要用于文件 DSN 的本地联调。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}
	if err := models.InitDefaultAccount(cfg.Account.Username, cfg.Account.Password); err != nil {
		stdLog.Fatalf("初始化博主账号失败: %v", err)
	}

	author := cfg.Account.Username
	if author == "" {
		author = "admin"
	}

	posts := []models.Post{
		{
			Title:   "React Hooks 入门指南",
			Summary: "介绍 useState、useEffect 等常用 Hook 的基本用法。",
			Content: "React Hooks 是 React 16.8 引入的新特性，它让我们能够在函数组件中使用状态和其他 React 特性。本文从 useState 和 useEffect 讲起。",
			Author:  author,
			Status:  models.PostStatusPublished,
		},
		{
			Title:   "Go 语言的错误处理哲学",
			Summary: "为什么 Go 选择显式返回错误而不是异常。",
			Content: "Go 把错误当作普通的值来处理。显式的 error 返回值迫使调用方直面失败路径，也让控制流一目了然。",
			Author:  author,
			Status:  models.PostStatusPublished,
		},
		{
			Title:   "博客改版计划（草稿）",
			Summary: "",
			Content: "这是还没写完的改版计划，先存成草稿。",
			Author:  author,
			Status:  models.PostStatusDraft,
		},
	}
	for i := range posts {
		if posts[i].Summary == "" {
			runes := []rune(posts[i].Content)
			if len(runes) > 120 {
				posts[i].Summary = string(runes[:120]) + "..."
			} else {
				posts[i].Summary = posts[i].Content
			}
		}
		if err := models.DB.Create(&posts[i]).Error; err != nil {
			stdLog.Fatalf("写入示例文章失败: %v", err)
		}
	}

	entries := []models.GuestbookEntry{
		{Nickname: "小明", Content: "博客写得很棒，常来看看！", Approved: true},
		{Nickname: "Visitor", Content: "Nice blog, keep it up!", Approved: true},
	}
	for i := range entries {
		if err := models.DB.Create(&entries[i]).Error; err != nil {
			stdLog.Fatalf("写入示例留言失败: %v", err)
		}
	}

	logger.Infow("seed_done", "posts", len(posts), "guestbook_entries", len(entries))
}
