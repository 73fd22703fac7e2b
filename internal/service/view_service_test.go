package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 观看记录只追加：同一用户重复观看每次都计数
func TestViewRecordAppendOnly(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")
	video := env.createVideo(t, user.ID, "go-tutorial", "", baseTime())

	for i := 0; i < 3; i++ {
		require.NoError(t, env.views.Record(video.ID, &user.ID))
	}

	count, err := env.views.Count(video.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestViewRecordAnonymous(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")
	video := env.createVideo(t, user.ID, "go-tutorial", "", baseTime())

	require.NoError(t, env.views.Record(video.ID, nil))
	require.NoError(t, env.views.Record(video.ID, nil))
	require.NoError(t, env.views.Record(video.ID, &user.ID))

	// 匿名观看同样计数
	count, err := env.views.Count(video.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	viewed, err := env.views.HasViewed(user.ID, video.ID)
	require.NoError(t, err)
	require.True(t, viewed)
}

func TestViewHasViewedFalseForOthers(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")
	video := env.createVideo(t, alice.ID, "go-tutorial", "", baseTime())

	require.NoError(t, env.views.Record(video.ID, &alice.ID))

	viewed, err := env.views.HasViewed(bob.ID, video.ID)
	require.NoError(t, err)
	require.False(t, viewed)
}

func TestViewRecordVideoNotFound(t *testing.T) {
	env := newTestEnv(t)

	require.ErrorIs(t, env.views.Record(404, nil), ErrVideoNotFound)
}
