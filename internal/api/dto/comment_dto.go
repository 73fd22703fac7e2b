package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// CommentInfo 评论详情
type CommentInfo struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Author *AuthorBrief `json:"author,omitempty"`
}
