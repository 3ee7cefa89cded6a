package store

import (
	"context"
	"testing"

	"github.com/creziapro/site/internal/storage"
)

func TestCreateAndVerifyAdminSession(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	token, err := s.CreateAdminSession(ctx, "admin@creziapro.com")
	if err != nil {
		t.Fatalf("CreateAdminSession() error = %v", err)
	}
	if token == "" {
		t.Fatal("CreateAdminSession() returned empty token")
	}

	session, err := s.VerifyAdminSession(ctx, token)
	if err != nil {
		t.Fatalf("VerifyAdminSession() error = %v", err)
	}
	if session == nil {
		t.Fatal("VerifyAdminSession() = nil, want valid session")
	}
	if session.UserID != "admin@creziapro.com" {
		t.Errorf("UserID = %q, want admin@creziapro.com", session.UserID)
	}
}

func TestVerifyAdminSessionUnknownToken(t *testing.T) {
	s, _, _ := newTestStore()

	session, err := s.VerifyAdminSession(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("VerifyAdminSession() error = %v", err)
	}
	if session != nil {
		t.Errorf("VerifyAdminSession(unknown) = %+v, want nil", session)
	}
}

func TestVerifyAdminSessionExpiryIsLazy(t *testing.T) {
	s, kv, clock := newTestStore()
	ctx := context.Background()

	token, err := s.CreateAdminSession(ctx, "admin@creziapro.com")
	if err != nil {
		t.Fatalf("CreateAdminSession() error = %v", err)
	}

	// Just inside the 24h window: still valid.
	clock.Advance(24*60*60*1000 - 1)
	session, err := s.VerifyAdminSession(ctx, token)
	if err != nil {
		t.Fatalf("VerifyAdminSession() error = %v", err)
	}
	if session == nil {
		t.Fatal("session expired early, want valid just before the deadline")
	}

	// Past the deadline: verification fails and removes the record.
	clock.Advance(2)
	session, err = s.VerifyAdminSession(ctx, token)
	if err != nil {
		t.Fatalf("VerifyAdminSession() error = %v", err)
	}
	if session != nil {
		t.Fatalf("VerifyAdminSession(expired) = %+v, want nil", session)
	}

	// Lazy expiry must have deleted the durable record too.
	if _, err := kv.Get(ctx, adminSessionKey(token)); err != storage.ErrNotFound {
		t.Errorf("expired session still in durable storage, Get error = %v", err)
	}
}

func TestDeleteAdminSession(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	token, err := s.CreateAdminSession(ctx, "admin@creziapro.com")
	if err != nil {
		t.Fatalf("CreateAdminSession() error = %v", err)
	}
	if err := s.DeleteAdminSession(ctx, token); err != nil {
		t.Fatalf("DeleteAdminSession() error = %v", err)
	}

	session, err := s.VerifyAdminSession(ctx, token)
	if err != nil {
		t.Fatalf("VerifyAdminSession() error = %v", err)
	}
	if session != nil {
		t.Errorf("VerifyAdminSession() after logout = %+v, want nil", session)
	}
}
