package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddProject stores a new portfolio project under a fresh id.
func (s *Store) AddProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Project{}, err
	}

	project.ID = uuid.NewString()
	if err := s.put(ctx, projectKey(project.ID), project); err != nil {
		return domain.Project{}, err
	}
	s.projects[project.ID] = project
	return project, nil
}

// UpdateProject merges patch over the stored record. Returns nil if id
// is unknown.
func (s *Store) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	project, ok := s.projects[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Image != nil {
		project.Image = *patch.Image
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Tags != nil {
		project.Tags = *patch.Tags
	}

	if err := s.put(ctx, projectKey(id), project); err != nil {
		return nil, err
	}
	s.projects[id] = project
	return &project, nil
}

// DeleteProject removes one project. Returns whether it existed.
func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, projectKey(id)); err != nil {
		return false, err
	}
	delete(s.projects, id)
	return true, nil
}

// ListProjects returns every project. No ordering is guaranteed.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	return projects, nil
}
