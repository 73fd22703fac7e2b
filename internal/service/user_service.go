package service

import (
	"errors"

	"tube-go/internal/api/dto"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

// UserService 频道主页：用户信息、订阅者数量和该频道的视频列表
type UserService struct {
	userRepo         *repository.UserRepository
	videoRepo        *repository.VideoRepository
	subscriptionRepo *repository.SubscriptionRepository
	feed             *FeedService
}

func NewUserService(
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	feed *FeedService,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		feed:             feed,
	}
}

// GetChannel 获取频道主页数据，viewerID 存在时附带订阅状态
func (s *UserService) GetChannel(channelID int64, viewerID *int64) (*dto.ChannelProfile, error) {
	user, err := s.userRepo.GetByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.subscriptionRepo.CountByChannel(channelID)
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.ListByUser(channelID)
	if err != nil {
		return nil, err
	}
	items, err := s.feed.enrich(videos, viewerID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ChannelProfile{
		UserInfo:        *toUserInfo(user),
		SubscriberCount: subscriberCount,
		Videos:          items,
	}

	if viewerID != nil {
		if profile.IsSubscribed, err = s.subscriptionRepo.Exists(*viewerID, channelID); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
