package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddService stores a new service. Any id on the input is replaced by a
// freshly generated one. The store performs no uniqueness checks beyond
// the id itself.
func (s *Store) AddService(ctx context.Context, service domain.Service) (domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Service{}, err
	}

	service.ID = uuid.NewString()
	if err := s.put(ctx, serviceKey(service.ID), service); err != nil {
		return domain.Service{}, err
	}
	s.services[service.ID] = service
	return service, nil
}

// UpdateService merges patch over the stored record (shallow merge,
// omitted fields keep their value). Returns nil if id is unknown.
func (s *Store) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	service, ok := s.services[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		service.Title = *patch.Title
	}
	if patch.Description != nil {
		service.Description = *patch.Description
	}
	if patch.Icon != nil {
		service.Icon = *patch.Icon
	}
	if patch.Features != nil {
		service.Features = *patch.Features
	}
	if patch.PricingBands != nil {
		service.PricingBands = *patch.PricingBands
	}

	if err := s.put(ctx, serviceKey(id), service); err != nil {
		return nil, err
	}
	s.services[id] = service
	return &service, nil
}

// DeleteService removes one service. Returns whether it existed.
func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.services[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, serviceKey(id)); err != nil {
		return false, err
	}
	delete(s.services, id)
	return true, nil
}

// ListServices returns every service. No ordering is guaranteed.
func (s *Store) ListServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.listServicesLocked(), nil
}

func (s *Store) listServicesLocked() []domain.Service {
	services := make([]domain.Service, 0, len(s.services))
	for _, service := range s.services {
		services = append(services, service)
	}
	return services
}
