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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/videos/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(currentUserID, videoID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Create comment failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "发表评论失败")
		return
	}

	response.OK(c, "comment", info)
}

// Delete DELETE /api/v1/videos/:id/comments/:cid
func (h *CommentHandler) Delete(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	commentID, ok := parseIDParam(c, "cid")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(currentUserID, videoID, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrCommentNoPermission):
			response.Unauthorized(c, err.Error())
		default:
			logger.Error("Delete comment failed",
				zap.Int64("video_id", videoID),
				zap.Int64("comment_id", commentID),
				zap.Error(err))
			response.InternalError(c, "删除评论失败")
		}
		return
	}

	response.Empty(c)
}
