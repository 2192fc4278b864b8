package repository

// PostListFilter 查询文章列表的过滤条件
// Page 从 0 开始计数（沿用前端既有契约）；Size <= 0 表示不分页
type PostListFilter struct {
	Page   int
	Size   int
	Status string // 为空表示不过滤状态
	Search string // 标题/正文/摘要的子串匹配，大小写不敏感
}
