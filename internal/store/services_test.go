package store

import (
	"context"
	"testing"

	"github.com/creziapro/site/internal/domain"
)

func TestAddServiceAssignsID(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	created, err := s.AddService(ctx, domain.Service{
		ID:          "client-supplied", // must be replaced
		Title:       "Web Development",
		Description: "Full-stack builds",
		Icon:        "code",
		Features:    []string{"Responsive", "SEO-ready"},
		PricingBands: []domain.PricingBand{
			{Label: "Basic", Min: 500, Max: 1500},
		},
	})
	if err != nil {
		t.Fatalf("AddService() error = %v", err)
	}
	if created.ID == "" || created.ID == "client-supplied" {
		t.Errorf("AddService() ID = %q, want a fresh server-side id", created.ID)
	}

	services, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices() error = %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("ListServices() returned %d services, want 1", len(services))
	}
	if services[0].PricingBands[0].Label != "Basic" {
		t.Errorf("stored service lost its pricing bands: %+v", services[0])
	}
}

func TestUpdateServicePatchesOnlySetFields(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	created, err := s.AddService(ctx, domain.Service{
		Title:       "Branding",
		Description: "Logos and identity",
		Icon:        "palette",
		Features:    []string{"Logo"},
	})
	if err != nil {
		t.Fatalf("AddService() error = %v", err)
	}

	newTitle := "Brand Strategy"
	updated, err := s.UpdateService(ctx, created.ID, domain.ServicePatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateService() = nil, want updated service")
	}
	if updated.Title != "Brand Strategy" {
		t.Errorf("Title = %q, want Brand Strategy", updated.Title)
	}
	if updated.Description != "Logos and identity" {
		t.Errorf("Description changed to %q, patch should leave it alone", updated.Description)
	}
	if len(updated.Features) != 1 || updated.Features[0] != "Logo" {
		t.Errorf("Features changed to %v, patch should leave them alone", updated.Features)
	}
}

func TestUpdateServiceUnknownID(t *testing.T) {
	s, _, _ := newTestStore()

	title := "x"
	updated, err := s.UpdateService(context.Background(), "nope", domain.ServicePatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}
	if updated != nil {
		t.Errorf("UpdateService(unknown) = %+v, want nil", updated)
	}
}

func TestDeleteService(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	created, err := s.AddService(ctx, domain.Service{Title: "Hosting"})
	if err != nil {
		t.Fatalf("AddService() error = %v", err)
	}

	deleted, err := s.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteService() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteService() = false, want true")
	}

	// Second delete reports the record gone.
	deleted, err = s.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("second DeleteService() error = %v", err)
	}
	if deleted {
		t.Error("DeleteService() on a removed id = true, want false")
	}

	services, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices() error = %v", err)
	}
	if len(services) != 0 {
		t.Errorf("ListServices() after delete = %+v, want empty", services)
	}
}
