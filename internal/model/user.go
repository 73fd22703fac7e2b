package model

import "time"

// User 用户模型（首次 Google 身份验证成功后创建，本服务不删除用户）
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Username  string    `gorm:"size:255;not null;comment:显示名称" json:"username"`
	Avatar    string    `gorm:"size:500;comment:用户头像" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`

	// 关联关系
	Videos   []Video   `gorm:"foreignKey:UserID" json:"videos,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

func (User) TableName() string {
	return "users"
}
