package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/creziapro/site/internal/storage"
)

// KV is an in-process storage.KV.
//
// It backs tests and the optional ephemeral mode where the server runs
// without Redis. Nothing survives a restart.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory KV.
func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (kv *KV) Put(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	// Copy so callers can't mutate stored bytes afterwards.
	buf := make([]byte, len(value))
	copy(buf, value)
	kv.data[key] = buf
	return nil
}

func (kv *KV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	buf := make([]byte, len(value))
	copy(buf, value)
	return buf, nil
}

func (kv *KV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)
	return nil
}

func (kv *KV) DeleteMany(_ context.Context, keys []string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	for _, key := range keys {
		delete(kv.data, key)
	}
	return nil
}

func (kv *KV) List(_ context.Context, prefix string) (map[string][]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	out := make(map[string][]byte)
	for key, value := range kv.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		buf := make([]byte, len(value))
		copy(buf, value)
		out[key] = buf
	}
	return out, nil
}

func (kv *KV) Ping(context.Context) error { return nil }

// Len returns the number of stored keys. Test helper.
func (kv *KV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	return len(kv.data)
}
