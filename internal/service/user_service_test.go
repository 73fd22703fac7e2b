package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserGetChannel(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	fan := env.createUser(t, "fan@example.com")
	old := env.createVideo(t, owner.ID, "old", "", baseTime())
	fresh := env.createVideo(t, owner.ID, "fresh", "", baseTime().Add(time.Hour))

	// 其他人的视频不混入
	env.createVideo(t, fan.ID, "other", "", baseTime())

	_, err := env.subscriptions.Toggle(fan.ID, owner.ID)
	require.NoError(t, err)

	profile, err := env.users.GetChannel(owner.ID, &fan.ID)
	require.NoError(t, err)

	require.Equal(t, owner.ID, profile.ID)
	require.EqualValues(t, 1, profile.SubscriberCount)
	require.True(t, profile.IsSubscribed)

	require.Len(t, profile.Videos, 2)
	require.Equal(t, fresh.ID, profile.Videos[0].ID)
	require.Equal(t, old.ID, profile.Videos[1].ID)
}

func TestUserGetChannelAnonymous(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	env.createVideo(t, owner.ID, "go-tutorial", "", baseTime())

	profile, err := env.users.GetChannel(owner.ID, nil)
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)
	require.Len(t, profile.Videos, 1)
}

func TestUserGetChannelNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.GetChannel(404, nil)
	require.ErrorIs(t, err, ErrUserNotFound)
}
