package service

import (
	"context"
	"errors"

	"tube-go/internal/api/dto"
	"tube-go/internal/cache"
	infraKafka "tube-go/internal/infra/kafka"
	"tube-go/internal/model"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("没有权限删除该评论")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	statsCache  *cache.VideoStatsCache
	events      EventSink
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	statsCache *cache.VideoStatsCache,
	events EventSink,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		statsCache:  statsCache,
		events:      events,
	}
}

// Create 发表评论
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID: videoID,
		UserID:  userID,
		Text:    req.Text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	_ = s.statsCache.Invalidate(context.Background(), videoID)

	uid := userID
	publishEvent(s.events, &infraKafka.EngagementEvent{
		Type:    infraKafka.EventComment,
		VideoID: videoID,
		UserID:  &uid,
	})

	return toCommentInfo(comment), nil
}

// CanDelete 评论只有作者本人可以删除
func (s *CommentService) CanDelete(requesterID int64, comment *model.Comment) bool {
	return comment.UserID == requesterID
}

// Delete 删除评论。非作者删除返回 ErrCommentNoPermission（映射为 401）。
func (s *CommentService) Delete(requesterID, videoID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.VideoID != videoID {
		return ErrCommentNotFound
	}

	if !s.CanDelete(requesterID, comment) {
		return ErrCommentNoPermission
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	_ = s.statsCache.Invalidate(context.Background(), videoID)
	return nil
}

func toCommentInfo(c *model.Comment) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        c.ID,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}

	if c.User.ID != 0 {
		info.Author = &dto.AuthorBrief{
			ID:       c.User.ID,
			Username: c.User.Username,
			Avatar:   c.User.Avatar,
		}
	}

	return info
}
