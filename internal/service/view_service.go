package service

import (
	"context"
	"errors"

	"tube-go/internal/cache"
	infraKafka "tube-go/internal/infra/kafka"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

// ViewService 记录观看事件。观看记录只追加、不去重：同一用户反复观看
// 会产生多条记录并全部计数。
type ViewService struct {
	viewRepo   *repository.ViewRepository
	videoRepo  *repository.VideoRepository
	statsCache *cache.VideoStatsCache
	events     EventSink
}

func NewViewService(
	viewRepo *repository.ViewRepository,
	videoRepo *repository.VideoRepository,
	statsCache *cache.VideoStatsCache,
	events EventSink,
) *ViewService {
	return &ViewService{
		viewRepo:   viewRepo,
		videoRepo:  videoRepo,
		statsCache: statsCache,
		events:     events,
	}
}

// Record 记录一次观看，viewerID 为空表示匿名观看
func (s *ViewService) Record(videoID int64, viewerID *int64) error {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if _, err := s.viewRepo.Create(videoID, viewerID); err != nil {
		return err
	}

	_ = s.statsCache.Invalidate(context.Background(), videoID)

	publishEvent(s.events, &infraKafka.EngagementEvent{
		Type:    infraKafka.EventView,
		VideoID: videoID,
		UserID:  viewerID,
	})

	return nil
}

// HasViewed 查询用户是否观看过该视频
func (s *ViewService) HasViewed(userID, videoID int64) (bool, error) {
	return s.viewRepo.Exists(userID, videoID)
}

// Count 统计视频的观看总数（含匿名）
func (s *ViewService) Count(videoID int64) (int64, error) {
	return s.viewRepo.CountByVideo(videoID)
}
