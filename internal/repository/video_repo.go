package repository

import (
	"strings"

	"tube-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithUser 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithUser(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("User").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListAll 获取全部视频（按创建时间倒序，含作者信息）
func (r *VideoRepository) ListAll() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// Search 按标题或描述做大小写无关的子串匹配（按创建时间倒序，含作者信息）
func (r *VideoRepository) Search(query string) ([]model.Video, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var videos []model.Video
	err := r.db.Preload("User").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// ListByUser 获取某作者的全部视频（按创建时间倒序）
func (r *VideoRepository) ListByUser(userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// DeleteCascade 在单个事务里删除视频及其观看、点赞、评论记录。
// 任一步失败整体回滚，不会留下半删状态。
func (r *VideoRepository) DeleteCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.View{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Video{}, id).Error
	})
}
