package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/blog-next/internal/config"
)

// 配置缺省时的 HTTP 超时
const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 30 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
)

// HTTPService 博客 API 的 HTTP 服务封装
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务，超时取自服务器配置
func NewHTTPService(serverCfg config.ServerConfig, handler http.Handler) *HTTPService {
	return &HTTPService{
		name: "blog-http",
		server: &http.Server{
			Addr:              serverCfg.Host + ":" + serverCfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: timeoutSeconds(serverCfg.ReadHeaderTimeoutSeconds, defaultReadHeaderTimeout),
			ReadTimeout:       timeoutSeconds(serverCfg.ReadTimeoutSeconds, defaultReadTimeout),
			WriteTimeout:      timeoutSeconds(serverCfg.WriteTimeoutSeconds, defaultWriteTimeout),
			IdleTimeout:       timeoutSeconds(serverCfg.IdleTimeoutSeconds, defaultIdleTimeout),
		},
	}
}

func timeoutSeconds(seconds int, fallback time.Duration) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

// Name 服务名称
func (s *HTTPService) Name() string {
	if s == nil || s.name == "" {
		return "blog-http"
	}
	return s.name
}

// Addr 监听地址
func (s *HTTPService) Addr() string {
	if s == nil || s.server == nil {
		return ""
	}
	return s.server.Addr
}

// Start 启动服务
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 停止服务
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
