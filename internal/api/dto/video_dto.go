package dto

import "time"

// VideoCreateRequest 发布视频请求（文件本身由前端直传对象存储）
type VideoCreateRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
}

// AuthorBrief 视频中嵌套的作者简要信息
type AuthorBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// VideoInfo 视频详情。计数字段总是填充；布尔互动字段在匿名访问时保持 false。
type VideoInfo struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail"`
	CreatedAt   time.Time `json:"created_at"`

	Author *AuthorBrief `json:"author,omitempty"`

	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
	CommentCount int64 `json:"comment_count"`

	IsLiked      bool `json:"is_liked"`
	IsDisliked   bool `json:"is_disliked"`
	IsViewed     bool `json:"is_viewed"`
	IsSubscribed bool `json:"is_subscribed"`
	IsVideoMine  bool `json:"is_video_mine"`

	// 单视频详情独有
	SubscriberCount int64         `json:"subscriber_count,omitempty"`
	Comments        []CommentInfo `json:"comments,omitempty"`
}
