package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数
// 页码从 0 开始，切片区间 [page*size, page*size+size) 由数据库自行钳位
func applyPagination(query *gorm.DB, page, size int) *gorm.DB {
	if query == nil || size <= 0 {
		return query
	}
	if page < 0 {
		page = 0
	}
	return query.Limit(size).Offset(page * size)
}
