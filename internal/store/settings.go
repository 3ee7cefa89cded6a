package store

import (
	"context"

	"github.com/creziapro/site/internal/domain"
)

// SiteSettings returns the stored singleton, or the built-in defaults
// when nothing has been saved yet.
func (s *Store) SiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.SiteSettings{}, err
	}
	return s.siteSettingsLocked(), nil
}

func (s *Store) siteSettingsLocked() domain.SiteSettings {
	if s.settings != nil {
		return *s.settings
	}
	return domain.DefaultSiteSettings()
}

// PutSiteSettings replaces the singleton wholesale. This is a full
// replace, not a merge.
func (s *Store) PutSiteSettings(ctx context.Context, settings domain.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.put(ctx, keySiteSettings, settings); err != nil {
		return err
	}
	s.settings = &settings
	return nil
}

// HasSiteSettings reports whether an admin has saved settings, as
// opposed to the defaults being served.
func (s *Store) HasSiteSettings(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	return s.settings != nil, nil
}

// ChatbotConfig composes the settings prompt with the current service
// catalogue. Read-only, nothing new is stored.
func (s *Store) ChatbotConfig(ctx context.Context) (domain.ChatbotConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.ChatbotConfig{}, err
	}

	return domain.ChatbotConfig{
		Prompt:   s.siteSettingsLocked().ChatbotPrompt,
		Services: s.listServicesLocked(),
	}, nil
}

// Stats returns the dashboard counters from the mirror's collection sizes.
func (s *Store) Stats(ctx context.Context) (domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		Messages:  len(s.contacts),
		Services:  len(s.services),
		Projects:  len(s.projects),
		BlogPosts: len(s.blogPosts),
	}, nil
}
