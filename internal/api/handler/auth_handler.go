package handler

import (
	"errors"

	"tube-go/internal/api/dto"
	"tube-go/internal/api/middleware"
	"tube-go/internal/api/response"
	"tube-go/internal/service"
	"tube-go/pkg/auth"
	"tube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService         *service.AuthService
	subscriptionService *service.SubscriptionService
}

func NewAuthHandler(
	authService *service.AuthService,
	subscriptionService *service.SubscriptionService,
) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		subscriptionService: subscriptionService,
	}
}

// GoogleLogin POST /api/v1/auth/google-login
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.GoogleLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityRejected) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Google login failed", zap.Error(err))
		response.InternalError(c, "登录失败")
		return
	}

	// httpOnly cookie，供浏览器端免携带 Authorization 头
	c.SetCookie("token", data.Token, data.ExpiresIn, "/", "", false, true)

	response.OK(c, "user", data)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	user, err := h.authService.GetCurrentUser(currentUserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get current user failed", zap.Int64("user_id", currentUserID), zap.Error(err))
		response.InternalError(c, "获取用户信息失败")
		return
	}

	channels, err := h.subscriptionService.GetChannels(currentUserID)
	if err != nil {
		logger.Error("Get subscribed channels failed", zap.Int64("user_id", currentUserID), zap.Error(err))
		response.InternalError(c, "获取订阅频道失败")
		return
	}

	response.OK(c, "user", &dto.MeData{UserInfo: *user, Channels: channels})
}

// Signout GET /api/v1/auth/signout
func (h *AuthHandler) Signout(c *gin.Context) {
	if claims, ok := middleware.GetClaims(c); ok {
		if err := h.authService.Signout(c.Request.Context(), claims); err != nil {
			logger.Warn("Revoke token failed", zap.Error(err))
		}
	}

	c.SetCookie("token", "", -1, "/", "", false, true)

	response.Empty(c)
}
