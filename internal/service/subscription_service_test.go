package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscriptionToggle(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	channel := env.createUser(t, "channel@example.com")

	subscribed, err := env.subscriptions.Toggle(alice.ID, channel.ID)
	require.NoError(t, err)
	require.True(t, subscribed)

	count, err := env.subscriptions.SubscriberCount(channel.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// 再次切换即退订
	subscribed, err = env.subscriptions.Toggle(alice.ID, channel.ID)
	require.NoError(t, err)
	require.False(t, subscribed)

	count, err = env.subscriptions.SubscriberCount(channel.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestSubscriptionToggleIdempotentPairs(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	channel := env.createUser(t, "channel@example.com")

	for i := 0; i < 4; i++ {
		_, err := env.subscriptions.Toggle(alice.ID, channel.ID)
		require.NoError(t, err)
	}

	// 偶数次切换回到未订阅，不留残余记录
	subscribed, err := env.subscriptions.IsSubscribed(alice.ID, channel.ID)
	require.NoError(t, err)
	require.False(t, subscribed)

	count, err := env.subscriptions.SubscriberCount(channel.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestSubscriptionSelfSubscribe(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")

	_, err := env.subscriptions.Toggle(alice.ID, alice.ID)
	require.ErrorIs(t, err, ErrSelfSubscribe)
}

func TestSubscriptionChannelNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")

	_, err := env.subscriptions.Toggle(alice.ID, 404)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscriptionGetChannels(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	first := env.createUser(t, "first@example.com")
	second := env.createUser(t, "second@example.com")

	_, err := env.subscriptions.Toggle(alice.ID, first.ID)
	require.NoError(t, err)
	_, err = env.subscriptions.Toggle(alice.ID, second.ID)
	require.NoError(t, err)

	channels, err := env.subscriptions.GetChannels(alice.ID)
	require.NoError(t, err)
	require.Len(t, channels, 2)

	ids := []int64{channels[0].ID, channels[1].ID}
	require.ElementsMatch(t, []int64{first.ID, second.ID}, ids)

	// 退订后不再出现
	_, err = env.subscriptions.Toggle(alice.ID, first.ID)
	require.NoError(t, err)

	channels, err = env.subscriptions.GetChannels(alice.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	require.Equal(t, second.ID, channels[0].ID)
}
