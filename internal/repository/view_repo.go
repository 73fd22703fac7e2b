package repository

import (
	"tube-go/internal/model"

	"gorm.io/gorm"
)

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create 追加一条观看记录，userID 为空表示匿名观看
func (r *ViewRepository) Create(videoID int64, userID *int64) (*model.View, error) {
	view := &model.View{VideoID: videoID, UserID: userID}
	if err := r.db.Create(view).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// Exists 查询用户是否观看过该视频
func (r *ViewRepository) Exists(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.View{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error
	return count > 0, err
}

// CountByVideo 统计视频的观看总数（含匿名）
func (r *ViewRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.View{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// CountByVideos 批量统计多个视频的观看总数
func (r *ViewRepository) CountByVideos(videoIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		VideoID int64
		Total   int64
	}
	err := r.db.Model(&model.View{}).
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

// BatchCheckViewed 批量查询用户对多个视频的观看状态
func (r *ViewRepository) BatchCheckViewed(userID int64, videoIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var matched []int64
	err := r.db.Model(&model.View{}).
		Distinct("video_id").
		Where("user_id = ? AND video_id IN ?", userID, videoIDs).
		Pluck("video_id", &matched).Error
	if err != nil {
		return nil, err
	}

	for _, id := range matched {
		result[id] = true
	}
	return result, nil
}
