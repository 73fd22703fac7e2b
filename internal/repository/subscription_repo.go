package repository

import (
	"tube-go/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系
func (r *SubscriptionRepository) Create(subscriberID, channelID int64) (*model.Subscription, error) {
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := r.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅关系
func (r *SubscriptionRepository) Delete(subscriberID, channelID int64) (bool, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查订阅关系是否存在
func (r *SubscriptionRepository) Exists(subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountByChannel 统计频道的订阅者数量
func (r *SubscriptionRepository) CountByChannel(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

// BatchCheckSubscribed 批量查询订阅者对多个频道的订阅状态
func (r *SubscriptionRepository) BatchCheckSubscribed(subscriberID int64, channelIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(channelIDs))
	if len(channelIDs) == 0 {
		return result, nil
	}

	var matched []int64
	err := r.db.Model(&model.Subscription{}).
		Distinct("channel_id").
		Where("subscriber_id = ? AND channel_id IN ?", subscriberID, channelIDs).
		Pluck("channel_id", &matched).Error
	if err != nil {
		return nil, err
	}

	for _, id := range matched {
		result[id] = true
	}
	return result, nil
}

// GetChannelIDs 获取用户订阅的全部频道 ID
func (r *SubscriptionRepository) GetChannelIDs(subscriberID int64) ([]int64, error) {
	var channelIDs []int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Pluck("channel_id", &channelIDs).Error
	return channelIDs, err
}
