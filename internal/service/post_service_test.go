package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPostServiceTest(t *testing.T, name string) (*PostService, *Session) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}); err != nil {
		t.Fatalf("migrate posts failed: %v", err)
	}
	// 具名内存库在同一进程内复用，重跑前清空
	if err := db.Where("1 = 1").Delete(&models.Post{}).Error; err != nil {
		t.Fatalf("reset posts failed: %v", err)
	}
	session := &Session{AccountID: 1, Username: "admin", Role: models.RoleAdmin}
	return NewPostService(repository.NewPostRepository(db)), session
}

func strPtr(s string) *string { return &s }

func TestCreateRequiresSession(t *testing.T) {
	svc, _ := setupPostServiceTest(t, "post_svc_auth")

	_, err := svc.Create(nil, CreatePostInput{Title: "t", Content: "c"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestCreateValidatesAndAppliesDefaults(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_create")

	if _, err := svc.Create(session, CreatePostInput{Title: "  ", Content: "c"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("blank title: want ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(session, CreatePostInput{Title: "t", Content: ""}); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("blank content: want ErrContentRequired, got %v", err)
	}
	if _, err := svc.Create(session, CreatePostInput{Title: "t", Content: "c", Status: strPtr("ARCHIVED")}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bad status: want ErrInvalidStatus, got %v", err)
	}

	post, err := svc.Create(session, CreatePostInput{Title: "标题", Content: "正文"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Status != models.PostStatusPublished {
		t.Fatalf("status should default to PUBLISHED, got %q", post.Status)
	}
	if post.Author != "admin" {
		t.Fatalf("author should come from session, got %q", post.Author)
	}
	if post.Summary != "正文" {
		t.Fatalf("short content should become the summary, got %q", post.Summary)
	}
	if post.ID == 0 || post.CreatedAt.IsZero() {
		t.Fatalf("create should assign id and timestamps: %+v", post)
	}
}

func TestCreateDerivesSummaryFromLongContent(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_summary")

	long := strings.Repeat("赞", 200)
	post, err := svc.Create(session, CreatePostInput{Title: "t", Content: long})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasSuffix(post.Summary, "...") {
		t.Fatalf("derived summary should end with ellipsis, got %q", post.Summary)
	}
	if got := len([]rune(post.Summary)); got != summaryMaxRunes+3 {
		t.Fatalf("derived summary length: want %d runes, got %d", summaryMaxRunes+3, got)
	}

	// 显式摘要优先于截取
	withSummary, err := svc.Create(session, CreatePostInput{Title: "t2", Content: long, Summary: strPtr("手写摘要")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if withSummary.Summary != "手写摘要" {
		t.Fatalf("explicit summary should win, got %q", withSummary.Summary)
	}
}

func TestGetHidesDraftFromNonAuthor(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_draft")

	draft, err := svc.Create(session, CreatePostInput{Title: "草稿", Content: "未完成", Status: strPtr(models.PostStatusDraft)})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	if _, err := svc.Get(nil, draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("anonymous draft read: want ErrNotFound, got %v", err)
	}
	other := &Session{AccountID: 2, Username: "someone", Role: models.RoleAdmin}
	if _, err := svc.Get(other, draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("non-author draft read: want ErrNotFound, got %v", err)
	}
	got, err := svc.Get(session, draft.ID)
	if err != nil || got.ID != draft.ID {
		t.Fatalf("author draft read failed: %v", err)
	}
	if _, err := svc.Get(session, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing post: want ErrNotFound, got %v", err)
	}
}

func TestListPublicExcludesDraftsAndPaginates(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_list")

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(session, CreatePostInput{Title: fmt.Sprintf("发布 %d", i), Content: "c"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(session, CreatePostInput{Title: "草稿", Content: "c", Status: strPtr(models.PostStatusDraft)}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	page, err := svc.ListPublic(0, 2)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if page.TotalElements != 5 || page.TotalPages != 3 {
		t.Fatalf("want 5 published over 3 pages, got total=%d pages=%d", page.TotalElements, page.TotalPages)
	}
	if !page.First || page.Last {
		t.Fatalf("page 0 of 3: first=%v last=%v", page.First, page.Last)
	}

	last, err := svc.ListPublic(2, 2)
	if err != nil {
		t.Fatalf("list last page failed: %v", err)
	}
	if len(last.Content) != 1 || last.First || !last.Last {
		t.Fatalf("page 2 of 3: len=%d first=%v last=%v", len(last.Content), last.First, last.Last)
	}

	// 作者列表包含草稿
	mine, err := svc.ListMine(session, 0, 10)
	if err != nil {
		t.Fatalf("list mine failed: %v", err)
	}
	if mine.TotalElements != 6 {
		t.Fatalf("author list should include drafts, got %d", mine.TotalElements)
	}
	if _, err := svc.ListMine(nil, 0, 10); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous list mine: want ErrUnauthorized, got %v", err)
	}

	if _, err := svc.ListPublic(-1, 10); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("negative page: want ErrInvalidPage, got %v", err)
	}
	if _, err := svc.ListPublic(0, 0); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("zero size: want ErrInvalidPage, got %v", err)
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_update")

	post, err := svc.Create(session, CreatePostInput{Title: "原标题", Content: "原正文", Summary: strPtr("原摘要")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	createdAt := post.CreatedAt

	updated, err := svc.Update(session, post.ID, UpdatePostInput{Title: strPtr("新标题")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "新标题" || updated.Content != "原正文" || updated.Summary != "原摘要" {
		t.Fatalf("partial update leaked into other fields: %+v", updated)
	}
	if updated.Author != "admin" || !updated.CreatedAt.Equal(createdAt) {
		t.Fatalf("author and createdAt are immutable: %+v", updated)
	}
	if updated.UpdatedAt.Before(createdAt) {
		t.Fatalf("updatedAt should advance, got %v < %v", updated.UpdatedAt, createdAt)
	}

	// 提供空摘要时重新从正文截取
	updated, err = svc.Update(session, post.ID, UpdatePostInput{Summary: strPtr("  ")})
	if err != nil {
		t.Fatalf("update summary failed: %v", err)
	}
	if updated.Summary != "原正文" {
		t.Fatalf("blank summary should re-derive from content, got %q", updated.Summary)
	}

	if _, err := svc.Update(session, post.ID, UpdatePostInput{Title: strPtr(" ")}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("blank title update: want ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Update(nil, post.ID, UpdatePostInput{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous update: want ErrUnauthorized, got %v", err)
	}
	other := &Session{AccountID: 2, Username: "someone", Role: models.RoleAdmin}
	if _, err := svc.Update(other, post.ID, UpdatePostInput{Title: strPtr("x")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner update: want ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(session, 9999, UpdatePostInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing post update: want ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsPriorRecord(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_delete")

	post, err := svc.Create(session, CreatePostInput{Title: "将删除", Content: "c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.Delete(session, post.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != post.ID || deleted.Title != "将删除" {
		t.Fatalf("delete should return the removed post, got %+v", deleted)
	}
	if _, err := svc.Get(session, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted post should be gone, got %v", err)
	}
	if _, err := svc.Delete(session, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Delete(nil, post.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous delete: want ErrUnauthorized, got %v", err)
	}

	// 删除后新建不复用旧 ID
	next, err := svc.Create(session, CreatePostInput{Title: "新文章", Content: "c"})
	if err != nil {
		t.Fatalf("create after delete failed: %v", err)
	}
	if next.ID <= post.ID {
		t.Fatalf("deleted id reused: old=%d new=%d", post.ID, next.ID)
	}
}

func TestSearchRespectsVisibility(t *testing.T) {
	svc, session := setupPostServiceTest(t, "post_svc_search")

	if _, err := svc.Create(session, CreatePostInput{Title: "React Hooks 入门", Content: "hooks"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(session, CreatePostInput{Title: "React 草稿笔记", Content: "hooks", Status: strPtr(models.PostStatusDraft)}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	public, err := svc.Search(nil, "react")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(public) != 1 || public[0].Status != models.PostStatusPublished {
		t.Fatalf("anonymous search should only see published, got %d", len(public))
	}

	mine, err := svc.Search(session, "react")
	if err != nil {
		t.Fatalf("author search failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("author search should include drafts, got %d", len(mine))
	}

	// 空查询返回全部可见文章
	all, err := svc.Search(nil, "")
	if err != nil {
		t.Fatalf("empty search failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("empty query should list all published, got %d", len(all))
	}
}
