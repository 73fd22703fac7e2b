package dto

// ChannelProfile 频道主页数据
type ChannelProfile struct {
	UserInfo
	SubscriberCount int64       `json:"subscriber_count"`
	IsSubscribed    bool        `json:"is_subscribed"`
	Videos          []VideoInfo `json:"videos"`
}
