package service

import (
	"testing"

	"tube-go/internal/api/dto"

	"github.com/stretchr/testify/require"
)

func TestVideoCreate(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")

	info, err := env.videos.Create(user.ID, &dto.VideoCreateRequest{
		Title:       "go-tutorial",
		Description: "learn go",
		URL:         "http://minio:9000/videos/go-tutorial.mp4",
	})
	require.NoError(t, err)
	require.NotZero(t, info.ID)
	require.Equal(t, user.ID, info.UserID)
	require.Equal(t, "go-tutorial", info.Title)
}

func TestVideoDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")

	require.ErrorIs(t, env.videos.Delete(404, user.ID), ErrVideoNotFound)
}

func TestVideoDeleteNotOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	video := env.createVideo(t, owner.ID, "go-tutorial", "", baseTime())

	require.ErrorIs(t, env.videos.Delete(video.ID, stranger.ID), ErrVideoNoPermission)

	// 视频仍在
	_, err := env.feed.GetVideo(video.ID, nil)
	require.NoError(t, err)
}

// 删除视频连同其观看、点赞和评论一起删除
func TestVideoDeleteCascade(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	video := env.createVideo(t, owner.ID, "go-tutorial", "", baseTime())
	keep := env.createVideo(t, owner.ID, "rust-tutorial", "", baseTime())

	require.NoError(t, env.views.Record(video.ID, &viewer.ID))
	require.NoError(t, env.views.Record(video.ID, nil))
	require.NoError(t, env.reactions.Like(viewer.ID, video.ID))
	_, err := env.comments.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, env.views.Record(keep.ID, &viewer.ID))

	require.NoError(t, env.videos.Delete(video.ID, owner.ID))

	_, err = env.feed.GetVideo(video.ID, nil)
	require.ErrorIs(t, err, ErrVideoNotFound)

	viewCount, err := env.viewRepo.CountByVideo(video.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, viewCount)

	likeCount, err := env.reactions.LikeCount(video.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, likeCount)

	commentCount, err := env.commentRepo.CountByVideo(video.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, commentCount)

	// 其他视频不受影响
	keepViews, err := env.viewRepo.CountByVideo(keep.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, keepViews)
}
