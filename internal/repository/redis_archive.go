package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// maxRedisValue is the Redis string size limit (512 MiB).
const maxRedisValue = 512 << 20

// RedisArchive keeps the snapshot text in a single string key
// "<prefix>:<name>" with no expiry.
type RedisArchive struct {
	rdb redis.Cmdable
	key string
}

// NewRedisArchive builds an archive over rdb.  prefix may be empty.
func NewRedisArchive(rdb redis.Cmdable, prefix, name string) (*RedisArchive, error) {
	if name == "" {
		return nil, ErrNoSnapshotName
	}
	key := name
	if prefix != "" {
		key = prefix + ":" + name
	}
	return &RedisArchive{rdb: rdb, key: key}, nil
}

// Location returns "redis:<key>".
func (a *RedisArchive) Location() string { return "redis:" + a.key }

// Open fetches the snapshot text.  A missing key is ErrNoSnapshot.
func (a *RedisArchive) Open(ctx context.Context) (io.ReadCloser, error) {
	bs, err := a.rdb.Get(ctx, a.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w at %s", reservation.ErrNoSnapshot, a.Location())
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(bs)), nil
}

// Write buffers what fn produces and replaces the key with it.  Nothing is
// stored when fn fails.
func (a *RedisArchive) Write(ctx context.Context, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if buf.Len() > maxRedisValue {
		return ErrPayloadTooLarge
	}
	return a.rdb.Set(ctx, a.key, buf.Bytes(), 0).Err()
}
