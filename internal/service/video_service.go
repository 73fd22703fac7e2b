package service

import (
	"context"
	"errors"

	"tube-go/internal/api/dto"
	"tube-go/internal/cache"
	"tube-go/internal/model"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrVideoNoPermission = errors.New("没有权限操作该视频")
)

type VideoService struct {
	videoRepo  *repository.VideoRepository
	statsCache *cache.VideoStatsCache
}

func NewVideoService(videoRepo *repository.VideoRepository, statsCache *cache.VideoStatsCache) *VideoService {
	return &VideoService{videoRepo: videoRepo, statsCache: statsCache}
}

// Create 发布视频（元数据落库，文件已由前端直传对象存储）
func (s *VideoService) Create(userID int64, req *dto.VideoCreateRequest) (*dto.VideoInfo, error) {
	video := &model.Video{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	return toVideoInfo(video), nil
}

// Delete 删除视频（仅作者本人），连同观看、点赞、评论记录一起删除
func (s *VideoService) Delete(videoID, userID int64) error {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if video.UserID != userID {
		return ErrVideoNoPermission
	}

	if err := s.videoRepo.DeleteCascade(videoID); err != nil {
		return err
	}

	_ = s.statsCache.Invalidate(context.Background(), videoID)
	return nil
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo（不含计数与互动状态）
func toVideoInfo(video *model.Video) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:          video.ID,
		UserID:      video.UserID,
		Title:       video.Title,
		Description: video.Description,
		URL:         video.URL,
		Thumbnail:   video.Thumbnail,
		CreatedAt:   video.CreatedAt,
	}

	if video.User.ID != 0 {
		info.Author = &dto.AuthorBrief{
			ID:       video.User.ID,
			Username: video.User.Username,
			Avatar:   video.User.Avatar,
		}
	}

	return info
}
