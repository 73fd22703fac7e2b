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

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Presign POST /api/v1/media/presign
func (h *MediaHandler) Presign(c *gin.Context) {
	var req dto.PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.mediaService.PresignUpload(c.Request.Context(), currentUserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMediaKind) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Presign upload failed", zap.Error(err))
		response.InternalError(c, "生成上传地址失败")
		return
	}

	response.OK(c, "upload", data)
}
