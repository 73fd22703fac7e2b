package repository

import (
	"tube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Toggle 原子切换点赞/点踩状态，返回切换后的状态。
// 同极性记录存在 -> 删除（取消）；极性相反 -> 翻转；不存在 -> 插入。
// 不做“先查再写”：取消是条件删除，插入/翻转走唯一索引上的 upsert，
// 并发重复调用最多留下一条记录。
func (r *ReactionRepository) Toggle(userID, videoID int64, value int) (int, error) {
	state := model.ReactionNone
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND video_id = ? AND value = ?", userID, videoID, value).
			Delete(&model.Reaction{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			state = model.ReactionNone
			return nil
		}

		reaction := &model.Reaction{UserID: userID, VideoID: videoID, Value: value}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
		}).Create(reaction).Error; err != nil {
			return err
		}
		state = value
		return nil
	})
	return state, err
}

// Exists 查询是否存在指定极性的记录
func (r *ReactionRepository) Exists(userID, videoID int64, value int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Reaction{}).
		Where("user_id = ? AND video_id = ? AND value = ?", userID, videoID, value).
		Count(&count).Error
	return count > 0, err
}

// CountByVideo 统计视频指定极性的记录数
func (r *ReactionRepository) CountByVideo(videoID int64, value int) (int64, error) {
	var count int64
	err := r.db.Model(&model.Reaction{}).
		Where("video_id = ? AND value = ?", videoID, value).
		Count(&count).Error
	return count, err
}

// CountByVideos 批量统计多个视频指定极性的记录数
func (r *ReactionRepository) CountByVideos(videoIDs []int64, value int) (map[int64]int64, error) {
	result := make(map[int64]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		VideoID int64
		Total   int64
	}
	err := r.db.Model(&model.Reaction{}).
		Select("video_id, COUNT(*) AS total").
		Where("video_id IN ? AND value = ?", videoIDs, value).
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

// BatchCheck 批量查询用户对多个视频是否有指定极性的记录
func (r *ReactionRepository) BatchCheck(userID int64, videoIDs []int64, value int) (map[int64]bool, error) {
	result := make(map[int64]bool, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var matched []int64
	err := r.db.Model(&model.Reaction{}).
		Where("user_id = ? AND video_id IN ? AND value = ?", userID, videoIDs, value).
		Pluck("video_id", &matched).Error
	if err != nil {
		return nil, err
	}

	for _, id := range matched {
		result[id] = true
	}
	return result, nil
}
