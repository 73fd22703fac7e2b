package handler

import (
	"errors"

	"tube-go/internal/api/dto"
	"tube-go/internal/api/middleware"
	"tube-go/internal/api/response"
	"tube-go/internal/service"
	"tube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService    *service.VideoService
	feedService     *service.FeedService
	reactionService *service.ReactionService
	viewService     *service.ViewService
}

func NewVideoHandler(
	videoService *service.VideoService,
	feedService *service.FeedService,
	reactionService *service.ReactionService,
	viewService *service.ViewService,
) *VideoHandler {
	return &VideoHandler{
		videoService:    videoService,
		feedService:     feedService,
		reactionService: reactionService,
		viewService:     viewService,
	}
}

// GetRecommended GET /api/v1/videos
func (h *VideoHandler) GetRecommended(c *gin.Context) {
	videos, err := h.feedService.Recommended(middleware.GetViewerID(c))
	if err != nil {
		logger.Error("Get recommended videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "videos", videos)
}

// GetTrending GET /api/v1/videos/trending
func (h *VideoHandler) GetTrending(c *gin.Context) {
	videos, err := h.feedService.Trending(middleware.GetViewerID(c))
	if err != nil {
		logger.Error("Get trending videos failed", zap.Error(err))
		response.InternalError(c, "获取热门视频失败")
		return
	}

	response.OK(c, "videos", videos)
}

// Search GET /api/v1/videos/search?find=xxx
func (h *VideoHandler) Search(c *gin.Context) {
	videos, err := h.feedService.Search(c.Query("find"), middleware.GetViewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrEmptySearchQuery) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Search videos failed", zap.Error(err))
		response.InternalError(c, "搜索视频失败")
		return
	}

	response.OK(c, "videos", videos)
}

// Create POST /api/v1/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Create(currentUserID, &req)
	if err != nil {
		logger.Error("Create video failed", zap.Error(err))
		response.InternalError(c, "发布视频失败")
		return
	}

	response.OK(c, "video", info)
}

// GetByID GET /api/v1/videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.feedService.GetVideo(videoID, middleware.GetViewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get video failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "获取视频失败")
		return
	}

	response.OK(c, "video", info)
}

// Delete DELETE /api/v1/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(videoID, currentUserID); err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrVideoNoPermission):
			response.Unauthorized(c, err.Error())
		default:
			logger.Error("Delete video failed", zap.Int64("video_id", videoID), zap.Error(err))
			response.InternalError(c, "删除视频失败")
		}
		return
	}

	response.Empty(c)
}

// Like GET /api/v1/videos/:id/like
func (h *VideoHandler) Like(c *gin.Context) {
	h.toggleReaction(c, h.reactionService.Like)
}

// Dislike GET /api/v1/videos/:id/dislike
func (h *VideoHandler) Dislike(c *gin.Context) {
	h.toggleReaction(c, h.reactionService.Dislike)
}

func (h *VideoHandler) toggleReaction(c *gin.Context, toggle func(userID, videoID int64) error) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := toggle(currentUserID, videoID); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Toggle reaction failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "操作失败")
		return
	}

	response.Empty(c)
}

// View GET /api/v1/videos/:id/view
func (h *VideoHandler) View(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	if err := h.viewService.Record(videoID, middleware.GetViewerID(c)); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Record view failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "记录播放失败")
		return
	}

	response.Empty(c)
}
