package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddReview stores a customer review. Whatever the caller supplies, a
// new review always starts pending and gets a fresh id and timestamp.
func (s *Store) AddReview(ctx context.Context, name string, rating int, comment string) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Review{}, err
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		Name:      name,
		Rating:    rating,
		Comment:   comment,
		Status:    domain.ReviewPending,
		CreatedAt: s.now(),
	}

	if err := s.put(ctx, reviewKey(review.ID), review); err != nil {
		return domain.Review{}, err
	}
	s.reviews[review.ID] = review
	return review, nil
}

// ListReviews returns reviews newest first. A non-empty status filters
// to that moderation state.
func (s *Store) ListReviews(ctx context.Context, status domain.ReviewStatus) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if status != "" && review.Status != status {
			continue
		}
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	return reviews, nil
}

// UpdateReviewStatus moves a review to the given moderation state.
// Returns nil if id is unknown.
func (s *Store) UpdateReviewStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	review.Status = status

	if err := s.put(ctx, reviewKey(id), review); err != nil {
		return nil, err
	}
	s.reviews[id] = review
	return &review, nil
}

// DeleteReview removes one review. Returns whether it existed.
func (s *Store) DeleteReview(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.reviews[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, reviewKey(id)); err != nil {
		return false, err
	}
	delete(s.reviews, id)
	return true, nil
}
