package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/creziapro/site/internal/storage"
)

// keyNamespace isolates this application's records from anything else
// living in the same Redis database.
const keyNamespace = "creziapro:"

// KV implements storage.KV on top of a Redis client.
//
// Every record key is stored under the application namespace, so
// "service_<id>" becomes "creziapro:service_<id>" on the wire.
// Records carry no TTL: durability is the point, expiry of admin
// sessions is handled lazily by the record store itself.
type KV struct {
	client *redis.Client
}

// New creates a Redis-backed KV.
func New(client *redis.Client) *KV {
	return &KV{client: client}
}

func nsKey(key string) string {
	return keyNamespace + key
}

func (kv *KV) Put(ctx context.Context, key string, value []byte) error {
	if err := kv.client.Set(ctx, nsKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := kv.client.Get(ctx, nsKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	if err := kv.client.Del(ctx, nsKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (kv *KV) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	namespaced := make([]string, len(keys))
	for i, key := range keys {
		namespaced[i] = nsKey(key)
	}
	if err := kv.client.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("failed to delete %d keys: %w", len(keys), err)
	}
	return nil
}

// List scans the namespace for keys matching prefix and fetches their
// values. Keys that vanish between SCAN and GET are skipped.
func (kv *KV) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	out := make(map[string][]byte)

	iter := kv.client.Scan(ctx, 0, nsKey(prefix)+"*", 0).Iterator()
	for iter.Next(ctx) {
		full := iter.Val()
		data, err := kv.client.Get(ctx, full).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s during list: %w", full, err)
		}
		out[strings.TrimPrefix(full, keyNamespace)] = data
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}

	return out, nil
}

func (kv *KV) Ping(ctx context.Context) error {
	return kv.client.Ping(ctx).Err()
}
