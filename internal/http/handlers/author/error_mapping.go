package author

import (
	"errors"

	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var postWriteErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, msg: "未认证"},
	{target: service.ErrForbidden, code: response.CodeForbidden, msg: "无权操作"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "文章不存在"},
	{target: service.ErrTitleRequired, code: response.CodeBadRequest, msg: "标题不能为空"},
	{target: service.ErrContentRequired, code: response.CodeBadRequest, msg: "内容不能为空"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, msg: "文章状态非法"},
	{target: service.ErrInvalidPage, code: response.CodeBadRequest, msg: "分页参数非法"},
}
