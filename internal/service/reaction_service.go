package service

import (
	"context"
	"errors"

	"tube-go/internal/cache"
	infraKafka "tube-go/internal/infra/kafka"
	"tube-go/internal/model"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

// ReactionService 维护点赞/点踩状态机。每个 (用户, 视频) 的状态是
// 无 / 赞 / 踩 三者之一，Like 和 Dislike 对任何起始状态都有定义，
// 不会因状态产生业务错误。
type ReactionService struct {
	reactionRepo *repository.ReactionRepository
	videoRepo    *repository.VideoRepository
	statsCache   *cache.VideoStatsCache
	events       EventSink
}

func NewReactionService(
	reactionRepo *repository.ReactionRepository,
	videoRepo *repository.VideoRepository,
	statsCache *cache.VideoStatsCache,
	events EventSink,
) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		videoRepo:    videoRepo,
		statsCache:   statsCache,
		events:       events,
	}
}

// Like 点赞：已赞 -> 取消；已踩 -> 翻转为赞；无 -> 点赞
func (s *ReactionService) Like(userID, videoID int64) error {
	return s.toggle(userID, videoID, model.ReactionLike)
}

// Dislike 点踩：已踩 -> 取消；已赞 -> 翻转为踩；无 -> 点踩
func (s *ReactionService) Dislike(userID, videoID int64) error {
	return s.toggle(userID, videoID, model.ReactionDislike)
}

func (s *ReactionService) toggle(userID, videoID int64, value int) error {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if _, err := s.reactionRepo.Toggle(userID, videoID, value); err != nil {
		return err
	}

	_ = s.statsCache.Invalidate(context.Background(), videoID)

	uid := userID
	publishEvent(s.events, &infraKafka.EngagementEvent{
		Type:    infraKafka.EventReaction,
		VideoID: videoID,
		UserID:  &uid,
	})

	return nil
}

// IsLiked 查询用户是否点赞了该视频
func (s *ReactionService) IsLiked(userID, videoID int64) (bool, error) {
	return s.reactionRepo.Exists(userID, videoID, model.ReactionLike)
}

// IsDisliked 查询用户是否点踩了该视频
func (s *ReactionService) IsDisliked(userID, videoID int64) (bool, error) {
	return s.reactionRepo.Exists(userID, videoID, model.ReactionDislike)
}

// LikeCount 统计视频的点赞数
func (s *ReactionService) LikeCount(videoID int64) (int64, error) {
	return s.reactionRepo.CountByVideo(videoID, model.ReactionLike)
}

// DislikeCount 统计视频的点踩数
func (s *ReactionService) DislikeCount(videoID int64) (int64, error) {
	return s.reactionRepo.CountByVideo(videoID, model.ReactionDislike)
}
