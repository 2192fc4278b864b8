package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGuestbookServiceTest(t *testing.T, name string) (*GuestbookService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.GuestbookEntry{}); err != nil {
		t.Fatalf("migrate guestbook failed: %v", err)
	}
	// 具名内存库在同一进程内复用，重跑前清空
	if err := db.Where("1 = 1").Delete(&models.GuestbookEntry{}).Error; err != nil {
		t.Fatalf("reset guestbook failed: %v", err)
	}
	return NewGuestbookService(repository.NewGuestbookRepository(db)), db
}

func TestGuestbookCreateValidatesInput(t *testing.T) {
	svc, _ := setupGuestbookServiceTest(t, "guestbook_svc_validate")

	if _, err := svc.Create("  ", "hello"); !errors.Is(err, ErrNicknameRequired) {
		t.Fatalf("blank nickname: want ErrNicknameRequired, got %v", err)
	}
	if _, err := svc.Create("小明", "  "); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("blank content: want ErrContentRequired, got %v", err)
	}
}

func TestGuestbookCreateIsImmediatelyVisible(t *testing.T) {
	svc, _ := setupGuestbookServiceTest(t, "guestbook_svc_visible")

	entry, err := svc.Create("  小明  ", " 写得不错 ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if entry.Nickname != "小明" || entry.Content != "写得不错" {
		t.Fatalf("input should be trimmed, got %+v", entry)
	}
	if !entry.Approved {
		t.Fatalf("new entries are auto-approved")
	}

	entries, err := svc.ListApproved()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != entry.ID {
		t.Fatalf("new entry should appear in the list, got %d entries", len(entries))
	}
}
