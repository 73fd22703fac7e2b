package service

import (
	"testing"
	"time"

	"tube-go/internal/api/dto"

	"github.com/stretchr/testify/require"
)

func TestFeedRecommendedOrder(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")
	old := env.createVideo(t, user.ID, "old", "", baseTime())
	mid := env.createVideo(t, user.ID, "mid", "", baseTime().Add(time.Hour))
	fresh := env.createVideo(t, user.ID, "fresh", "", baseTime().Add(2*time.Hour))

	items, err := env.feed.Recommended(nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// 创建时间倒序
	require.Equal(t, fresh.ID, items[0].ID)
	require.Equal(t, mid.ID, items[1].ID)
	require.Equal(t, old.ID, items[2].ID)
}

func TestFeedRecommendedEmpty(t *testing.T) {
	env := newTestEnv(t)

	items, err := env.feed.Recommended(nil)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

// 匿名访问时互动布尔字段全部为 false，计数照常填充
func TestFeedRecommendedAnonymous(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	video := env.createVideo(t, owner.ID, "go-tutorial", "", baseTime())

	require.NoError(t, env.views.Record(video.ID, &viewer.ID))
	require.NoError(t, env.reactions.Like(viewer.ID, video.ID))

	items, err := env.feed.Recommended(nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	require.EqualValues(t, 1, got.ViewCount)
	require.EqualValues(t, 1, got.LikeCount)
	require.False(t, got.IsLiked)
	require.False(t, got.IsViewed)
	require.False(t, got.IsSubscribed)
	require.False(t, got.IsVideoMine)
}

func TestFeedRecommendedViewerFlags(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	mine := env.createVideo(t, viewer.ID, "mine", "", baseTime())
	theirs := env.createVideo(t, owner.ID, "theirs", "", baseTime().Add(time.Hour))

	require.NoError(t, env.views.Record(theirs.ID, &viewer.ID))
	require.NoError(t, env.reactions.Like(viewer.ID, theirs.ID))
	_, err := env.subscriptions.Toggle(viewer.ID, owner.ID)
	require.NoError(t, err)

	items, err := env.feed.Recommended(&viewer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[int64]dto.VideoInfo{}
	for _, it := range items {
		byID[it.ID] = it
	}

	got := byID[theirs.ID]
	require.True(t, got.IsLiked)
	require.True(t, got.IsViewed)
	require.True(t, got.IsSubscribed)
	require.False(t, got.IsVideoMine)

	own := byID[mine.ID]
	require.True(t, own.IsVideoMine)
	require.False(t, own.IsSubscribed)
}

// 热门按观看数倒序，观看数并列保持推荐顺序
func TestFeedTrending(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")
	low := env.createVideo(t, user.ID, "low", "", baseTime())
	high := env.createVideo(t, user.ID, "high", "", baseTime().Add(time.Hour))
	tieNew := env.createVideo(t, user.ID, "tie-new", "", baseTime().Add(3*time.Hour))
	tieOld := env.createVideo(t, user.ID, "tie-old", "", baseTime().Add(2*time.Hour))

	for i := 0; i < 3; i++ {
		require.NoError(t, env.views.Record(high.ID, nil))
	}
	require.NoError(t, env.views.Record(low.ID, nil))

	items, err := env.feed.Trending(nil)
	require.NoError(t, err)
	require.Len(t, items, 4)

	require.Equal(t, high.ID, items[0].ID)
	require.Equal(t, low.ID, items[1].ID)
	// 0 次观看并列，保持创建时间倒序
	require.Equal(t, tieNew.ID, items[2].ID)
	require.Equal(t, tieOld.ID, items[3].ID)
}

func TestFeedSearch(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")
	env.createVideo(t, user.ID, "Go Concurrency Patterns", "channels and goroutines", baseTime())
	env.createVideo(t, user.ID, "Cooking pasta", "a GOlden recipe", baseTime().Add(time.Hour))
	env.createVideo(t, user.ID, "Unrelated", "nothing here", baseTime().Add(2*time.Hour))

	// 大小写无关，标题或描述命中均可
	items, err := env.feed.Search("go", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = env.feed.Search("GOROUTINES", nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Go Concurrency Patterns", items[0].Title)

	items, err = env.feed.Search("missing", nil)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestFeedSearchEmptyQuery(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.feed.Search("", nil)
	require.ErrorIs(t, err, ErrEmptySearchQuery)

	_, err = env.feed.Search("   ", nil)
	require.ErrorIs(t, err, ErrEmptySearchQuery)
}

func TestFeedGetVideoDetail(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	fan := env.createUser(t, "fan@example.com")
	video := env.createVideo(t, owner.ID, "go-tutorial", "learn go", baseTime())

	require.NoError(t, env.views.Record(video.ID, &viewer.ID))
	require.NoError(t, env.views.Record(video.ID, nil))
	require.NoError(t, env.reactions.Like(viewer.ID, video.ID))
	require.NoError(t, env.reactions.Dislike(fan.ID, video.ID))
	_, err := env.subscriptions.Toggle(viewer.ID, owner.ID)
	require.NoError(t, err)
	_, err = env.subscriptions.Toggle(fan.ID, owner.ID)
	require.NoError(t, err)

	first, err := env.comments.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Text: "first"})
	require.NoError(t, err)
	second, err := env.comments.Create(fan.ID, video.ID, &dto.CommentCreateRequest{Text: "second"})
	require.NoError(t, err)

	info, err := env.feed.GetVideo(video.ID, &viewer.ID)
	require.NoError(t, err)

	require.EqualValues(t, 2, info.ViewCount)
	require.EqualValues(t, 1, info.LikeCount)
	require.EqualValues(t, 1, info.DislikeCount)
	require.EqualValues(t, 2, info.CommentCount)
	require.EqualValues(t, 2, info.SubscriberCount)

	require.True(t, info.IsLiked)
	require.False(t, info.IsDisliked)
	require.True(t, info.IsViewed)
	require.True(t, info.IsSubscribed)
	require.False(t, info.IsVideoMine)

	require.NotNil(t, info.Author)
	require.Equal(t, owner.ID, info.Author.ID)

	// 评论按时间倒序
	require.Len(t, info.Comments, 2)
	require.Equal(t, second.ID, info.Comments[0].ID)
	require.Equal(t, first.ID, info.Comments[1].ID)
}

func TestFeedGetVideoAsOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	video := env.createVideo(t, owner.ID, "go-tutorial", "", baseTime())

	info, err := env.feed.GetVideo(video.ID, &owner.ID)
	require.NoError(t, err)
	require.True(t, info.IsVideoMine)
}

func TestFeedGetVideoNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.feed.GetVideo(404, nil)
	require.ErrorIs(t, err, ErrVideoNotFound)
}
