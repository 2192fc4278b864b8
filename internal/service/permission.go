package service

import "github.com/blog-next/internal/models"

// 权限判定为纯函数：不读写任何状态，只看传入的会话与资源。
// 单独拆出来是为了让授权规则可以脱离存储和接口层独立测试。

// CanRead 判定会话是否可读文章
// 已发布文章人人可读，草稿只有作者本人可读
func CanRead(session *Session, post *models.Post) bool {
	if post == nil {
		return false
	}
	if post.Status == models.PostStatusPublished {
		return true
	}
	return session != nil && session.Username == post.Author
}

// CanWrite 判定会话是否可写 resourceOwner 名下的资源
func CanWrite(session *Session, resourceOwner string) bool {
	return session != nil && session.Username == resourceOwner
}

// CanAccessAuthorArea 判定会话是否可进入作者后台
func CanAccessAuthorArea(session *Session) bool {
	return session != nil
}
