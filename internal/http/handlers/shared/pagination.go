package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// 分页默认值与上限。页码从 0 开始。
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePageQuery 解析分页查询参数
// 非法的 size/page 原样传给业务层拒绝，只对超大 size 封顶
func ParsePageQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = -1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		size = 0
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
