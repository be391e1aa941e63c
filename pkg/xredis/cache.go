package xredis

import (
	"context"
	"time"
)

// CacheAside reads key into a fresh T, falling back to load on a miss and
// writing the loaded value back with the given ttl. The key builder lives at
// the call site so cache keys stay explicit rather than derived from
// function introspection.
func CacheAside[T any](
	ctx context.Context,
	client Client,
	key string,
	ttl time.Duration,
	load func(context.Context) (*T, error),
) (*T, error) {
	// Cache failures other than a miss degrade to the load path; the
	// loaded value is authoritative either way.
	var cached T
	if err := client.GetObj(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	loaded, err := load(ctx)
	if err != nil {
		return nil, err
	}

	_ = client.SetObj(ctx, key, loaded, ttl)
	return loaded, nil
}
