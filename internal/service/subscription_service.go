package service

import (
	"errors"

	"tube-go/internal/api/dto"
	infraKafka "tube-go/internal/infra/kafka"
	"tube-go/internal/model"
	"tube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("用户不存在")
	ErrSelfSubscribe = errors.New("不能订阅自己的频道")
)

// SubscriptionService 订阅者 -> 频道主的有向关系。唯一索引保证同一对
// (订阅者, 频道) 至多一条记录。
type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	userRepo         *repository.UserRepository
	events           EventSink
}

func NewSubscriptionService(
	subscriptionRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
	events EventSink,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		events:           events,
	}
}

// Toggle 订阅/退订频道，返回切换后是否处于订阅状态
func (s *SubscriptionService) Toggle(subscriberID, channelID int64) (bool, error) {
	if subscriberID == channelID {
		return false, ErrSelfSubscribe
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	deleted, err := s.subscriptionRepo.Delete(subscriberID, channelID)
	if err != nil {
		return false, err
	}

	subscribed := false
	if !deleted {
		if _, err := s.subscriptionRepo.Create(subscriberID, channelID); err != nil {
			return false, err
		}
		subscribed = true
	}

	uid := subscriberID
	publishEvent(s.events, &infraKafka.EngagementEvent{
		Type:      infraKafka.EventSubscription,
		ChannelID: channelID,
		UserID:    &uid,
	})

	return subscribed, nil
}

// IsSubscribed 查询订阅者是否订阅了频道
func (s *SubscriptionService) IsSubscribed(subscriberID, channelID int64) (bool, error) {
	return s.subscriptionRepo.Exists(subscriberID, channelID)
}

// SubscriberCount 统计频道的订阅者数量
func (s *SubscriptionService) SubscriberCount(channelID int64) (int64, error) {
	return s.subscriptionRepo.CountByChannel(channelID)
}

// GetChannels 获取用户订阅的全部频道
func (s *SubscriptionService) GetChannels(subscriberID int64) ([]dto.UserInfo, error) {
	channelIDs, err := s.subscriptionRepo.GetChannelIDs(subscriberID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetByIDs(channelIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	// 保持订阅时间倒序
	channels := make([]dto.UserInfo, 0, len(channelIDs))
	for _, id := range channelIDs {
		if u, ok := byID[id]; ok {
			channels = append(channels, *toUserInfo(u))
		}
	}
	return channels, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}
