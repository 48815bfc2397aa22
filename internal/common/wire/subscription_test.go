package wire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_RefreshDeliversToCallbacks(t *testing.T) {
	n := 0
	sub := New(func(ctx context.Context) (int, error) {
		n++
		return n, nil
	})

	var got []Result[int]
	sub.OnResult(func(r Result[int]) { got = append(got, r) })

	sub.Refresh(context.Background())
	sub.Refresh(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Data)
	assert.Equal(t, 2, got[1].Data)

	latest, ok := sub.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, latest.Data)
}

func TestSubscription_ErrorReplacesData(t *testing.T) {
	fail := false
	sub := New(func(ctx context.Context) ([]string, error) {
		if fail {
			return []string{"stale"}, errors.New("offline")
		}
		return []string{"a"}, nil
	})

	assert.True(t, sub.Refresh(context.Background()).OK())

	fail = true
	res := sub.Refresh(context.Background())
	assert.False(t, res.OK())
	assert.Nil(t, res.Data)
	assert.EqualError(t, res.Err, "offline")
}

func TestSubscription_EveryRefreshFetches(t *testing.T) {
	calls := 0
	sub := New(func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("offline")
		}
		return calls, nil
	})

	_, ok := sub.Latest()
	assert.False(t, ok)

	assert.False(t, sub.Refresh(context.Background()).OK())
	res := sub.Refresh(context.Background())
	require.True(t, res.OK())
	assert.Equal(t, 2, res.Data)
	assert.Equal(t, 2, calls)
}
