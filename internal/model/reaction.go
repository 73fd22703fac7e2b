package model

import "time"

// 点赞/点踩极性
const (
	ReactionLike    = 1
	ReactionDislike = -1
	ReactionNone    = 0
)

// Reaction 视频点赞/点踩模型。
// 唯一索引保证同一 (用户, 视频) 任何时刻至多一条记录，value 取 +1/-1。
type Reaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_reaction;index:idx_reactions_user_id;comment:点赞用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_reaction;index:idx_reactions_video_id;comment:被点赞视频ID" json:"video_id"`
	Value     int       `gorm:"not null;comment:极性 +1=赞 -1=踩" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (Reaction) TableName() string {
	return "reactions"
}
