package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/storage"
)

// Store is the single source of truth for every site resource.
//
// It keeps an in-memory mirror of the durable KV, hydrated lazily on
// first access. Reads are served from the mirror; every mutation writes
// the durable medium first and only then updates the mirror, so a
// failed durable write never leaves memory ahead of storage.
//
// One mutex guards the whole store, maps and durable write together.
// Contention is not a concern at back-office traffic levels, and a
// finer grain would let the mirror and the medium drift apart.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log logger.Logger
	now func() domain.Millis

	hydrated bool

	chatSessions  map[string]domain.ChatSession
	contacts      map[string]domain.ContactMessage
	services      map[string]domain.Service
	projects      map[string]domain.Project
	blogPosts     map[string]domain.BlogPost
	banners       map[string]domain.Banner
	reviews       map[string]domain.Review
	adminSessions map[string]domain.AdminSession
	settings      *domain.SiteSettings
}

// New creates a store over the given durable medium. Nothing is loaded
// until the first operation (or an explicit EnsureLoaded) touches it.
func New(kv storage.KV, log logger.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log,
		now: domain.NowMillis,

		chatSessions:  make(map[string]domain.ChatSession),
		contacts:      make(map[string]domain.ContactMessage),
		services:      make(map[string]domain.Service),
		projects:      make(map[string]domain.Project),
		blogPosts:     make(map[string]domain.BlogPost),
		banners:       make(map[string]domain.Banner),
		reviews:       make(map[string]domain.Review),
		adminSessions: make(map[string]domain.AdminSession),
	}
}

// EnsureLoaded hydrates the mirror from durable storage if that has not
// happened yet. It is idempotent and safe to call concurrently; callers
// racing on the first load serialize on the store mutex and the second
// one finds the hydrated flag set.
func (s *Store) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(ctx)
}

// Hydrated reports whether the mirror has been populated.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// collectionCodec binds a durable key namespace to its typed decoder.
type collectionCodec struct {
	prefix string
	load   func(id string, raw []byte) error
}

func (s *Store) codecs() []collectionCodec {
	return []collectionCodec{
		{prefixChatSession, loadInto(s.chatSessions)},
		{prefixContact, loadInto(s.contacts)},
		{prefixService, loadInto(s.services)},
		{prefixProject, loadInto(s.projects)},
		{prefixBlogPost, loadInto(s.blogPosts)},
		{prefixBanner, loadInto(s.banners)},
		{prefixReview, loadInto(s.reviews)},
		{prefixAdminSession, loadInto(s.adminSessions)},
	}
}

// loadInto returns a decoder that unmarshals raw into T and stores it
// under id in the given collection map.
func loadInto[T any](collection map[string]T) func(id string, raw []byte) error {
	return func(id string, raw []byte) error {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		collection[id] = record
		return nil
	}
}

// ensureLoaded must be called with the store mutex held.
func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.hydrated {
		return nil
	}

	stored, err := s.kv.List(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to hydrate store: %w", err)
	}

	codecs := s.codecs()
	loaded, skipped := 0, 0

	for key, raw := range stored {
		if key == keySiteSettings {
			var settings domain.SiteSettings
			if err := json.Unmarshal(raw, &settings); err != nil {
				s.log.Warn("skipping undecodable settings record", logger.Error(err))
				skipped++
				continue
			}
			s.settings = &settings
			loaded++
			continue
		}

		matched := false
		for _, codec := range codecs {
			if !strings.HasPrefix(key, codec.prefix) {
				continue
			}
			matched = true
			id := strings.TrimPrefix(key, codec.prefix)
			if err := codec.load(id, raw); err != nil {
				s.log.Warn("skipping undecodable record",
					logger.String("key", key),
					logger.Error(err))
				skipped++
				break
			}
			loaded++
			break
		}
		if !matched {
			// Unknown namespace, likely written by a newer version. Leave it alone.
			s.log.Debug("ignoring record with unknown prefix", logger.String("key", key))
		}
	}

	s.hydrated = true
	s.log.Info("store hydrated",
		logger.Int("records", loaded),
		logger.Int("skipped", skipped))
	return nil
}

// put marshals record and writes it through to durable storage.
// The caller updates the mirror only after put returns nil.
func (s *Store) put(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, data)
}
