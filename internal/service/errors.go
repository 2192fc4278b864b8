package service

import "errors"

// 业务错误。仓库与认证层抛出最具体的一种，
// 接口层只做映射，不会把具体错误降级成笼统错误。
var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUnauthorized       = errors.New("未认证")
	ErrForbidden          = errors.New("无权操作")
	ErrNotFound           = errors.New("记录不存在")

	ErrInvalidPage      = errors.New("分页参数非法")
	ErrTitleRequired    = errors.New("标题不能为空")
	ErrContentRequired  = errors.New("内容不能为空")
	ErrInvalidStatus    = errors.New("文章状态非法")
	ErrNicknameRequired = errors.New("昵称不能为空")
)
