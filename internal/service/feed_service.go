package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"tube-go/internal/api/dto"
	"tube-go/internal/cache"
	"tube-go/internal/model"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

var ErrEmptySearchQuery = errors.New("请输入搜索关键词")

// FeedService 把基础视频记录和观看/点赞/评论/订阅的派生计数拼装成
// 推荐、热门、搜索列表和单视频详情。
type FeedService struct {
	videoRepo        *repository.VideoRepository
	viewRepo         *repository.ViewRepository
	reactionRepo     *repository.ReactionRepository
	commentRepo      *repository.CommentRepository
	subscriptionRepo *repository.SubscriptionRepository
	statsCache       *cache.VideoStatsCache
}

func NewFeedService(
	videoRepo *repository.VideoRepository,
	viewRepo *repository.ViewRepository,
	reactionRepo *repository.ReactionRepository,
	commentRepo *repository.CommentRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	statsCache *cache.VideoStatsCache,
) *FeedService {
	return &FeedService{
		videoRepo:        videoRepo,
		viewRepo:         viewRepo,
		reactionRepo:     reactionRepo,
		commentRepo:      commentRepo,
		subscriptionRepo: subscriptionRepo,
		statsCache:       statsCache,
	}
}

// Recommended 推荐列表：全部视频按创建时间倒序
func (s *FeedService) Recommended(viewerID *int64) ([]dto.VideoInfo, error) {
	videos, err := s.videoRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.enrich(videos, viewerID)
}

// Trending 热门列表：推荐列表按观看数稳定重排，观看数并列时保持原有顺序
func (s *FeedService) Trending(viewerID *int64) ([]dto.VideoInfo, error) {
	items, err := s.Recommended(viewerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ViewCount > items[j].ViewCount
	})
	return items, nil
}

// Search 搜索列表：标题或描述包含关键词（大小写无关的子串匹配）。
// 空关键词是参数错误，不是空结果。
func (s *FeedService) Search(query string, viewerID *int64) ([]dto.VideoInfo, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptySearchQuery
	}

	videos, err := s.videoRepo.Search(query)
	if err != nil {
		return nil, err
	}
	return s.enrich(videos, viewerID)
}

// GetVideo 单视频详情：计数、评论列表（按评论时间倒序）和观看者互动状态。
// 匿名访问时全部布尔字段保持 false。
func (s *FeedService) GetVideo(videoID int64, viewerID *int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDWithUser(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	stats, err := s.videoStats(videoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	subscriberCount, err := s.subscriptionRepo.CountByChannel(video.UserID)
	if err != nil {
		return nil, err
	}

	info := toVideoInfo(video)
	info.ViewCount = stats.Views
	info.LikeCount = stats.Likes
	info.DislikeCount = stats.Dislikes
	info.CommentCount = stats.Comments
	info.SubscriberCount = subscriberCount

	info.Comments = make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		info.Comments = append(info.Comments, *toCommentInfo(&comments[i]))
	}

	if viewerID != nil {
		uid := *viewerID
		info.IsVideoMine = uid == video.UserID

		if info.IsLiked, err = s.reactionRepo.Exists(uid, videoID, model.ReactionLike); err != nil {
			return nil, err
		}
		if info.IsDisliked, err = s.reactionRepo.Exists(uid, videoID, model.ReactionDislike); err != nil {
			return nil, err
		}
		if info.IsViewed, err = s.viewRepo.Exists(uid, videoID); err != nil {
			return nil, err
		}
		if info.IsSubscribed, err = s.subscriptionRepo.Exists(uid, video.UserID); err != nil {
			return nil, err
		}
	}

	return info, nil
}

// enrich 批量拼装列表项。空列表直接返回，不做计数聚合。
func (s *FeedService) enrich(videos []model.Video, viewerID *int64) ([]dto.VideoInfo, error) {
	items := make([]dto.VideoInfo, 0, len(videos))
	if len(videos) == 0 {
		return items, nil
	}

	videoIDs := make([]int64, 0, len(videos))
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
	}

	viewCounts, err := s.viewRepo.CountByVideos(videoIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.reactionRepo.CountByVideos(videoIDs, model.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikeCounts, err := s.reactionRepo.CountByVideos(videoIDs, model.ReactionDislike)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountByVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	var likedSet, dislikedSet, viewedSet, subscribedSet map[int64]bool
	if viewerID != nil {
		uid := *viewerID

		if likedSet, err = s.reactionRepo.BatchCheck(uid, videoIDs, model.ReactionLike); err != nil {
			return nil, err
		}
		if dislikedSet, err = s.reactionRepo.BatchCheck(uid, videoIDs, model.ReactionDislike); err != nil {
			return nil, err
		}
		if viewedSet, err = s.viewRepo.BatchCheckViewed(uid, videoIDs); err != nil {
			return nil, err
		}

		channelIDs := make([]int64, 0, len(videos))
		seen := make(map[int64]bool, len(videos))
		for i := range videos {
			if !seen[videos[i].UserID] {
				seen[videos[i].UserID] = true
				channelIDs = append(channelIDs, videos[i].UserID)
			}
		}
		if subscribedSet, err = s.subscriptionRepo.BatchCheckSubscribed(uid, channelIDs); err != nil {
			return nil, err
		}
	}

	for i := range videos {
		video := &videos[i]
		info := toVideoInfo(video)
		info.ViewCount = viewCounts[video.ID]
		info.LikeCount = likeCounts[video.ID]
		info.DislikeCount = dislikeCounts[video.ID]
		info.CommentCount = commentCounts[video.ID]

		if viewerID != nil {
			info.IsLiked = likedSet[video.ID]
			info.IsDisliked = dislikedSet[video.ID]
			info.IsViewed = viewedSet[video.ID]
			info.IsSubscribed = subscribedSet[video.UserID]
			info.IsVideoMine = video.UserID == *viewerID
		}

		items = append(items, *info)
	}

	return items, nil
}

// videoStats 单视频计数：优先读缓存，未命中回源数据库并回填
func (s *FeedService) videoStats(videoID int64) (*cache.VideoStats, error) {
	ctx := context.Background()

	if stats, ok := s.statsCache.Get(ctx, videoID); ok {
		return stats, nil
	}

	views, err := s.viewRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}
	likes, err := s.reactionRepo.CountByVideo(videoID, model.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.reactionRepo.CountByVideo(videoID, model.ReactionDislike)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	stats := &cache.VideoStats{
		Views:    views,
		Likes:    likes,
		Dislikes: dislikes,
		Comments: comments,
	}
	s.statsCache.Set(ctx, videoID, stats)

	return stats, nil
}
