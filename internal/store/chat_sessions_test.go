package store

import (
	"context"
	"testing"
)

func TestAddChatSessionDefaultTitle(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	session, err := s.AddChatSession(ctx, "sess-1", "")
	if err != nil {
		t.Fatalf("AddChatSession() error = %v", err)
	}
	if session.ID != "sess-1" {
		t.Errorf("ID = %q, want caller-chosen sess-1", session.ID)
	}
	if session.Title == "" {
		t.Error("empty title should get a date-based default")
	}
	if session.LastActive != session.CreatedAt {
		t.Errorf("LastActive = %d, want CreatedAt %d on a new session", session.LastActive, session.CreatedAt)
	}
}

func TestTouchChatSessionBumpsLastActive(t *testing.T) {
	s, _, clock := newTestStore()
	ctx := context.Background()

	session, err := s.AddChatSession(ctx, "sess-1", "Quote question")
	if err != nil {
		t.Fatalf("AddChatSession() error = %v", err)
	}

	clock.Advance(5000)
	if err := s.TouchChatSession(ctx, "sess-1"); err != nil {
		t.Fatalf("TouchChatSession() error = %v", err)
	}

	sessions, err := s.ListChatSessions(ctx)
	if err != nil {
		t.Fatalf("ListChatSessions() error = %v", err)
	}
	if sessions[0].LastActive != session.CreatedAt+5000 {
		t.Errorf("LastActive = %d, want %d", sessions[0].LastActive, session.CreatedAt+5000)
	}

	// Touching an unknown id is a silent no-op.
	if err := s.TouchChatSession(ctx, "ghost"); err != nil {
		t.Errorf("TouchChatSession(unknown) error = %v, want nil", err)
	}
}

func TestListChatSessionsMostRecentFirst(t *testing.T) {
	s, _, clock := newTestStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		clock.Advance(1000)
		if _, err := s.AddChatSession(ctx, id, "t"); err != nil {
			t.Fatalf("AddChatSession(%q) error = %v", id, err)
		}
	}
	// Revive the oldest.
	clock.Advance(1000)
	if err := s.TouchChatSession(ctx, "a"); err != nil {
		t.Fatalf("TouchChatSession() error = %v", err)
	}

	sessions, err := s.ListChatSessions(ctx)
	if err != nil {
		t.Fatalf("ListChatSessions() error = %v", err)
	}
	want := []string{"a", "c", "b"}
	for i, id := range want {
		if sessions[i].ID != id {
			t.Errorf("sessions[%d] = %q, want %q", i, sessions[i].ID, id)
		}
	}
}

func TestRenameChatSession(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	if _, err := s.AddChatSession(ctx, "sess-1", "old"); err != nil {
		t.Fatalf("AddChatSession() error = %v", err)
	}

	renamed, err := s.RenameChatSession(ctx, "sess-1", "new")
	if err != nil {
		t.Fatalf("RenameChatSession() error = %v", err)
	}
	if !renamed {
		t.Error("RenameChatSession() = false, want true")
	}

	renamed, err = s.RenameChatSession(ctx, "ghost", "x")
	if err != nil {
		t.Fatalf("RenameChatSession(unknown) error = %v", err)
	}
	if renamed {
		t.Error("RenameChatSession(unknown) = true, want false")
	}

	sessions, err := s.ListChatSessions(ctx)
	if err != nil {
		t.Fatalf("ListChatSessions() error = %v", err)
	}
	if sessions[0].Title != "new" {
		t.Errorf("Title = %q, want new", sessions[0].Title)
	}
}

func TestClearChatSessions(t *testing.T) {
	s, kv, _ := newTestStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := s.AddChatSession(ctx, id, "t"); err != nil {
			t.Fatalf("AddChatSession(%q) error = %v", id, err)
		}
	}

	count, err := s.ClearChatSessions(ctx)
	if err != nil {
		t.Fatalf("ClearChatSessions() error = %v", err)
	}
	if count != 3 {
		t.Errorf("ClearChatSessions() = %d, want 3", count)
	}
	if kv.Len() != 0 {
		t.Errorf("durable storage still holds %d keys after clear", kv.Len())
	}

	// Clearing an empty store reports zero.
	count, err = s.ClearChatSessions(ctx)
	if err != nil {
		t.Fatalf("second ClearChatSessions() error = %v", err)
	}
	if count != 0 {
		t.Errorf("ClearChatSessions() on empty store = %d, want 0", count)
	}
}
