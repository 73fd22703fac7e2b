package repository

import (
	"tube-go/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(id int64) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// ListByVideo 获取视频的评论列表（按评论时间倒序，含评论者信息）
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByVideo 统计视频的评论数
func (r *CommentRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// CountByVideos 批量统计多个视频的评论数
func (r *CommentRepository) CountByVideos(videoIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		VideoID int64
		Total   int64
	}
	err := r.db.Model(&model.Comment{}).
		Select("video_id, COUNT(*) AS total").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.VideoID] = row.Total
	}
	return result, nil
}
