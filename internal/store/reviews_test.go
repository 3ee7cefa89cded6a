package store

import (
	"context"
	"testing"

	"github.com/creziapro/site/internal/domain"
)

func TestAddReviewStartsPending(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	review, err := s.AddReview(ctx, "Alice", 5, "Great work")
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if review.Status != domain.ReviewPending {
		t.Errorf("Status = %q, want %q", review.Status, domain.ReviewPending)
	}
	if review.ID == "" {
		t.Error("AddReview() returned empty id")
	}
}

func TestReviewApprovalLifecycle(t *testing.T) {
	s, _, clock := newTestStore()
	ctx := context.Background()

	first, err := s.AddReview(ctx, "Alice", 5, "Great")
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	clock.Advance(1000)
	if _, err := s.AddReview(ctx, "Bob", 4, "Good"); err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	// Nothing is approved yet.
	approved, err := s.ListReviews(ctx, domain.ReviewApproved)
	if err != nil {
		t.Fatalf("ListReviews(approved) error = %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("ListReviews(approved) = %d reviews, want 0", len(approved))
	}

	updated, err := s.UpdateReviewStatus(ctx, first.ID, domain.ReviewApproved)
	if err != nil {
		t.Fatalf("UpdateReviewStatus() error = %v", err)
	}
	if updated == nil || updated.Status != domain.ReviewApproved {
		t.Fatalf("UpdateReviewStatus() = %+v, want approved review", updated)
	}

	approved, err = s.ListReviews(ctx, domain.ReviewApproved)
	if err != nil {
		t.Fatalf("ListReviews(approved) error = %v", err)
	}
	if len(approved) != 1 || approved[0].ID != first.ID {
		t.Errorf("ListReviews(approved) = %+v, want only Alice's review", approved)
	}

	pending, err := s.ListReviews(ctx, domain.ReviewPending)
	if err != nil {
		t.Fatalf("ListReviews(pending) error = %v", err)
	}
	if len(pending) != 1 || pending[0].Name != "Bob" {
		t.Errorf("ListReviews(pending) = %+v, want only Bob's review", pending)
	}

	all, err := s.ListReviews(ctx, "")
	if err != nil {
		t.Fatalf("ListReviews(all) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListReviews(all) = %d reviews, want 2", len(all))
	}
	// Newest first.
	if all[0].Name != "Bob" {
		t.Errorf("first review = %q, want Bob (newest first)", all[0].Name)
	}
}

func TestUpdateReviewStatusUnknownID(t *testing.T) {
	s, _, _ := newTestStore()

	updated, err := s.UpdateReviewStatus(context.Background(), "nope", domain.ReviewApproved)
	if err != nil {
		t.Fatalf("UpdateReviewStatus() error = %v", err)
	}
	if updated != nil {
		t.Errorf("UpdateReviewStatus(unknown) = %+v, want nil", updated)
	}
}

func TestDeleteReview(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	review, err := s.AddReview(ctx, "Alice", 5, "Great")
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	deleted, err := s.DeleteReview(ctx, review.ID)
	if err != nil {
		t.Fatalf("DeleteReview() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteReview() = false, want true")
	}

	all, err := s.ListReviews(ctx, "")
	if err != nil {
		t.Fatalf("ListReviews() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("ListReviews() after delete = %+v, want empty", all)
	}
}
