// Package seed loads an optional YAML file with initial site content and
// applies it to an empty store, so a fresh deployment does not start blank.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/store"
)

// Loader handles loading and parsing of the seed YAML file.
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file. A missing file is not an error:
// it returns (nil, nil) so callers can skip seeding.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return &f, nil
}

// Apply writes the seed content into the store, but only where the store is
// still empty: services/projects are seeded only when none exist, settings
// only when none have been saved. Existing content always wins.
func Apply(ctx context.Context, s *store.Store, f *File, log logger.Logger) error {
	if f == nil {
		return nil
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read store stats: %w", err)
	}

	if stats.Services == 0 {
		for _, svc := range f.Services {
			if svc.Title == "" {
				continue
			}
			if _, err := s.AddService(ctx, mapService(svc)); err != nil {
				return fmt.Errorf("failed to seed service %q: %w", svc.Title, err)
			}
		}
		if len(f.Services) > 0 {
			log.Info("seeded services", logger.Int("count", len(f.Services)))
		}
	}

	if stats.Projects == 0 {
		for _, p := range f.Projects {
			if p.Title == "" {
				continue
			}
			if _, err := s.AddProject(ctx, mapProject(p)); err != nil {
				return fmt.Errorf("failed to seed project %q: %w", p.Title, err)
			}
		}
		if len(f.Projects) > 0 {
			log.Info("seeded projects", logger.Int("count", len(f.Projects)))
		}
	}

	if f.Settings != nil {
		saved, err := s.HasSiteSettings(ctx)
		if err != nil {
			return fmt.Errorf("failed to check site settings: %w", err)
		}
		if !saved {
			if err := s.PutSiteSettings(ctx, mapSettings(*f.Settings)); err != nil {
				return fmt.Errorf("failed to seed site settings: %w", err)
			}
			log.Info("seeded site settings")
		}
	}

	return nil
}

// mapSettings starts from the defaults and overrides only the fields the
// seed file sets.
func mapSettings(in Settings) domain.SiteSettings {
	out := domain.DefaultSiteSettings()
	if in.HeroTitle != "" {
		out.HeroTitle = in.HeroTitle
	}
	if in.HeroSubtitle != "" {
		out.HeroSubtitle = in.HeroSubtitle
	}
	if in.HeroCtaText != "" {
		out.HeroCtaText = in.HeroCtaText
	}
	if in.ContactEmail != "" {
		out.ContactEmail = in.ContactEmail
	}
	if in.ContactPhone != "" {
		out.ContactPhone = in.ContactPhone
	}
	if in.TwitterURL != "" {
		out.TwitterURL = in.TwitterURL
	}
	if in.FacebookURL != "" {
		out.FacebookURL = in.FacebookURL
	}
	if in.LinkedinURL != "" {
		out.LinkedinURL = in.LinkedinURL
	}
	if in.ChatbotPrompt != "" {
		out.ChatbotPrompt = in.ChatbotPrompt
	}
	return out
}

func mapService(in Service) domain.Service {
	svc := domain.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Features:    in.Features,
	}
	for _, band := range in.Pricing {
		svc.PricingBands = append(svc.PricingBands, domain.PricingBand{
			Label: band.Label,
			Min:   band.Min,
			Max:   band.Max,
		})
	}
	return svc
}

func mapProject(in Project) domain.Project {
	status := domain.ProjectStatus(in.Status)
	if !status.Valid() {
		status = domain.ProjectOngoing
	}
	return domain.Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Status:      status,
		Tags:        in.Tags,
	}
}
