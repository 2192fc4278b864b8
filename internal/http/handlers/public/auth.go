package public

import (
	"errors"

	"github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string           `json:"token"`
	User      *service.Session `json:"user"`
	ExpiresAt string           `json:"expires_at"`
}

// Login 博主登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	session, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "用户名或密码错误", nil)
			return
		}
		respondError(c, response.CodeInternal, "登录失败", err)
		return
	}

	shared.RequestLog(c).Infow("login_success", "username", session.Username)
	response.Success(c, LoginResponse{
		Token:     session.Token,
		User:      session,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Logout 退出登录，幂等：未登录时同样返回成功
func (h *Handler) Logout(c *gin.Context) {
	h.AuthService.Logout(shared.BearerToken(c))
	response.Success(c, nil)
}
