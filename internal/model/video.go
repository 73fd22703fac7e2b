package model

import "time"

// Video 视频模型（删除时级联删除其观看、点赞和评论记录）
type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	UserID      int64     `gorm:"not null;index:idx_videos_user_id;comment:视频作者ID" json:"user_id"`
	Title       string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description string    `gorm:"type:text;comment:视频描述" json:"description"`
	URL         string    `gorm:"size:500;comment:视频播放地址" json:"url"`
	Thumbnail   string    `gorm:"size:500;comment:视频封面地址" json:"thumbnail"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
