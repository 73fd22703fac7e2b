package router

import (
	"net/http"

	"tube-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	mediaHandler *handler.MediaHandler,
	authRequired gin.HandlerFunc,
	authOptional gin.HandlerFunc,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/google-login", authHandler.GoogleLogin)

		authed := auth.Group("", authRequired)
		{
			authed.GET("/me", authHandler.Me)
			authed.GET("/signout", authHandler.Signout)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		// 浏览接口，匿名可访问，登录用户附带个性化字段
		browse := videos.Group("", authOptional)
		{
			browse.GET("", videoHandler.GetRecommended)
			browse.GET("/trending", videoHandler.GetTrending)
			browse.GET("/search", videoHandler.Search)
			browse.GET("/:id", videoHandler.GetByID)
			browse.GET("/:id/view", videoHandler.View)
		}

		authed := videos.Group("", authRequired)
		{
			authed.POST("", videoHandler.Create)
			authed.DELETE("/:id", videoHandler.Delete)
			authed.GET("/:id/like", videoHandler.Like)
			authed.GET("/:id/dislike", videoHandler.Dislike)
			authed.POST("/:id/comments", commentHandler.Create)
			authed.DELETE("/:id/comments/:cid", commentHandler.Delete)
		}
	}

	// --- 用户/频道模块 ---
	users := v1.Group("/users")
	{
		users.GET("/:id", authOptional, userHandler.GetChannel)
		users.GET("/:id/toggle-subscribe", authRequired, userHandler.ToggleSubscribe)
	}

	// --- 媒体上传模块 ---
	media := v1.Group("/media", authRequired)
	{
		media.POST("/presign", mediaHandler.Presign)
	}
}
