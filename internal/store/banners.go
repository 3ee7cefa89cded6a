package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddBanner stores a new banner under a fresh id.
func (s *Store) AddBanner(ctx context.Context, banner domain.Banner) (domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Banner{}, err
	}

	banner.ID = uuid.NewString()
	if err := s.put(ctx, bannerKey(banner.ID), banner); err != nil {
		return domain.Banner{}, err
	}
	s.banners[banner.ID] = banner
	return banner, nil
}

// UpdateBanner merges patch over the stored record. Returns nil if id
// is unknown.
func (s *Store) UpdateBanner(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	banner, ok := s.banners[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		banner.Title = *patch.Title
	}
	if patch.ImageURL != nil {
		banner.ImageURL = *patch.ImageURL
	}
	if patch.Link != nil {
		banner.Link = *patch.Link
	}
	if patch.Published != nil {
		banner.Published = *patch.Published
	}

	if err := s.put(ctx, bannerKey(id), banner); err != nil {
		return nil, err
	}
	s.banners[id] = banner
	return &banner, nil
}

// DeleteBanner removes one banner. Returns whether it existed.
func (s *Store) DeleteBanner(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.banners[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, bannerKey(id)); err != nil {
		return false, err
	}
	delete(s.banners, id)
	return true, nil
}

// ListBanners returns banners, optionally only published ones.
// No ordering is guaranteed.
func (s *Store) ListBanners(ctx context.Context, publishedOnly bool) ([]domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	banners := make([]domain.Banner, 0, len(s.banners))
	for _, banner := range s.banners {
		if publishedOnly && !banner.Published {
			continue
		}
		banners = append(banners, banner)
	}
	return banners, nil
}
