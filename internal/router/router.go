package router

import (
	"github.com/blog-next/internal/config"
	authorhandlers "github.com/blog-next/internal/http/handlers/author"
	publichandlers "github.com/blog-next/internal/http/handlers/public"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/作者后台分组）
	publicHandler := publichandlers.New(c)
	authorHandler := authorhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/search", publicHandler.SearchPosts)
			public.GET("/posts/:id", publicHandler.GetPost)
			public.GET("/guestbook", publicHandler.GetGuestbookEntries)
			public.POST("/guestbook", publicHandler.CreateGuestbookEntry)
		}

		// 认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", publicHandler.Login)
			auth.POST("/logout", publicHandler.Logout)
		}

		// 作者后台接口（需鉴权）
		authorized := apiV1.Group("")
		authorized.Use(SessionAuthMiddleware(c.AuthService))
		{
			authorized.GET("/me", authorHandler.GetCurrentUser)
			authorized.GET("/me/stats", authorHandler.GetStats)
			authorized.GET("/me/posts", authorHandler.GetMyPosts)
			authorized.POST("/posts", authorHandler.CreatePost)
			authorized.PUT("/posts/:id", authorHandler.UpdatePost)
			authorized.DELETE("/posts/:id", authorHandler.DeletePost)
		}
	}

	return r
}
