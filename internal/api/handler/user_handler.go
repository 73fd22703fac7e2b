package handler

import (
	"errors"

	"tube-go/internal/api/middleware"
	"tube-go/internal/api/response"
	"tube-go/internal/service"
	"tube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService         *service.UserService
	subscriptionService *service.SubscriptionService
}

func NewUserHandler(
	userService *service.UserService,
	subscriptionService *service.SubscriptionService,
) *UserHandler {
	return &UserHandler{
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

// GetChannel GET /api/v1/users/:id
func (h *UserHandler) GetChannel(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	profile, err := h.userService.GetChannel(channelID, middleware.GetViewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get channel failed", zap.Int64("channel_id", channelID), zap.Error(err))
		response.InternalError(c, "获取频道信息失败")
		return
	}

	response.OK(c, "user", profile)
}

// ToggleSubscribe GET /api/v1/users/:id/toggle-subscribe
func (h *UserHandler) ToggleSubscribe(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if _, err := h.subscriptionService.Toggle(currentUserID, channelID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrSelfSubscribe):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Toggle subscription failed", zap.Int64("channel_id", channelID), zap.Error(err))
			response.InternalError(c, "订阅操作失败")
		}
		return
	}

	response.Empty(c)
}
