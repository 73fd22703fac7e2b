package model

import "time"

// View 观看记录模型。只追加，不去重：同一用户重复观看会产生多条记录。
// UserID 为空表示匿名观看。
type View struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:观看记录ID" json:"id"`
	VideoID   int64     `gorm:"not null;index:idx_views_video_id;comment:被观看视频ID" json:"video_id"`
	UserID    *int64    `gorm:"index:idx_views_user_id;comment:观看用户ID（匿名为空）" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:观看时间" json:"created_at"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (View) TableName() string {
	return "views"
}
