package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"tube-go/internal/api/dto"
	"tube-go/internal/config"
	infraMinio "tube-go/internal/infra/minio"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var ErrInvalidMediaKind = errors.New("不支持的上传类型")

const presignExpiry = 15 * time.Minute

var kindBuckets = map[string]string{
	"thumbnail": "thumbnails",
	"avatar":    "avatars",
}

// MediaService 封面/头像直传：签发预签名 PUT URL，文件不经过本服务
type MediaService struct {
	client *minio.Client
	cfg    *config.MinIOConfig
}

func NewMediaService(client *minio.Client, cfg *config.MinIOConfig) *MediaService {
	return &MediaService{client: client, cfg: cfg}
}

// PresignUpload 签发预签名上传 URL
func (s *MediaService) PresignUpload(ctx context.Context, userID int64, req *dto.PresignRequest) (*dto.PresignData, error) {
	bucket, ok := kindBuckets[req.Kind]
	if !ok {
		return nil, ErrInvalidMediaKind
	}

	objectKey := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), path.Ext(req.FileName))

	uploadURL, err := infraMinio.PresignedPutURL(ctx, s.client, bucket, objectKey, presignExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.PresignData{
		UploadURL: uploadURL,
		PublicURL: infraMinio.PublicURL(s.cfg.Endpoint, s.cfg.UseSSL, bucket, objectKey),
		ObjectKey: objectKey,
		ExpiresIn: int(presignExpiry / time.Second),
	}, nil
}
