package service

import (
	"errors"
	"testing"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupStatsServiceTest(t *testing.T) (*StatsService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:stats_svc?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}, &models.GuestbookEntry{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	// 具名内存库在同一进程内复用，重跑前清空
	if err := db.Where("1 = 1").Delete(&models.Post{}).Error; err != nil {
		t.Fatalf("reset posts failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.GuestbookEntry{}).Error; err != nil {
		t.Fatalf("reset guestbook failed: %v", err)
	}
	return NewStatsService(repository.NewStatsRepository(db)), db
}

func TestStatsRequireSession(t *testing.T) {
	svc, _ := setupStatsServiceTest(t)
	if _, err := svc.Get(nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous stats: want ErrUnauthorized, got %v", err)
	}
}

func TestStatsCountByStatus(t *testing.T) {
	svc, db := setupStatsServiceTest(t)

	posts := []models.Post{
		{Title: "a", Content: "c", Author: "admin", Status: models.PostStatusPublished},
		{Title: "b", Content: "c", Author: "admin", Status: models.PostStatusPublished},
		{Title: "d", Content: "c", Author: "admin", Status: models.PostStatusDraft},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			t.Fatalf("create post failed: %v", err)
		}
	}
	if err := db.Create(&models.GuestbookEntry{Nickname: "n", Content: "c", Approved: true}).Error; err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	stats, err := svc.Get(&Session{AccountID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if stats.TotalPosts != 3 || stats.PublishedPosts != 2 || stats.DraftPosts != 1 {
		t.Fatalf("unexpected post counts: %+v", stats)
	}
	if stats.GuestbookEntries != 1 {
		t.Fatalf("want 1 guestbook entry, got %d", stats.GuestbookEntries)
	}
}
