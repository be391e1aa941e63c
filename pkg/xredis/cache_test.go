package xredis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethantsaox/jobflow/pkg/testutil"
	"github.com/ethantsaox/jobflow/pkg/xredis"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Value int `json:"value"`
}

func Test_CacheAside_MissLoadsAndWritesBack(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewInMemoryRedisClient()

	loads := 0
	load := func(ctx context.Context) (*snapshot, error) {
		loads++
		return &snapshot{Value: 42}, nil
	}

	got, err := xredis.CacheAside(ctx, client, "key", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 42, got.Value)
	require.Equal(t, 1, loads)

	// The second read is served from the cache.
	got, err = xredis.CacheAside(ctx, client, "key", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 42, got.Value)
	require.Equal(t, 1, loads)
}

func Test_CacheAside_LoadErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewInMemoryRedisClient()

	boom := errors.New("boom")
	_, err := xredis.CacheAside(ctx, client, "key", time.Minute,
		func(ctx context.Context) (*snapshot, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	exist, err := client.Exist(ctx, "key")
	require.NoError(t, err)
	require.False(t, exist)
}
